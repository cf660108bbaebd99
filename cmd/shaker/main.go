package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"shaker/internal/cache"
	"shaker/internal/catalog"
	"shaker/internal/cocktail"
	"shaker/internal/config"
	"shaker/internal/library"
	"shaker/internal/store"
)

func main() {
	var query string
	var id string
	var serve bool
	var addr string
	var help bool

	flag.StringVar(&query, "search", "", "Search cocktails by name (e.g., margarita)")
	flag.StringVar(&query, "s", "", "Search cocktails by name (short form)")
	flag.StringVar(&id, "id", "", "Show a single cocktail by id")
	flag.StringVar(&id, "i", "", "Show a single cocktail by id (short form)")
	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if serve {
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	lib := library.New(
		store.New(cache.NewFileCache(cfg.Storage.DataDir)),
		catalog.NewClient(cfg.Catalog),
	)

	ctx := context.Background()

	if id != "" {
		recipe, err := lib.Resolve(ctx, id)
		if err != nil {
			log.Fatalf("failed to resolve cocktail %s: %v", id, err)
		}
		printRecipe(recipe)
		return
	}

	if strings.TrimSpace(query) == "" {
		fmt.Println("Error: a search query or id is required (or use -serve for web mode)")
		showHelp()
		os.Exit(1)
	}

	results, err := lib.Search(ctx, query)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 {
		fmt.Printf("No cocktails found for %q\n", query)
		return
	}
	for _, recipe := range results {
		tag := ""
		if recipe.IsCustom {
			tag = " [custom]"
		}
		fmt.Printf("- %s%s (%s, %s): %s\n", recipe.Name, tag, recipe.Alcoholic, recipe.Glass, recipe.ID)
	}
}

func printRecipe(recipe *cocktail.Recipe) {
	fmt.Printf("%s (%s)\n", recipe.Name, recipe.ID)
	if recipe.Category != "" {
		fmt.Printf("Category: %s\n", recipe.Category)
	}
	fmt.Printf("%s, served in: %s\n", recipe.Alcoholic, recipe.Glass)
	if recipe.HasImage() {
		fmt.Printf("Image: %s\n", recipe.Image)
	}
	fmt.Println("\nIngredients:")
	for _, ing := range recipe.Ingredients {
		if ing.Measure != "" {
			fmt.Printf("  - %s (%s)\n", ing.Name, ing.Measure)
		} else {
			fmt.Printf("  - %s\n", ing.Name)
		}
	}
	if recipe.Instructions != "" {
		fmt.Printf("\nInstructions:\n%s\n", recipe.Instructions)
	}
}

func showHelp() {
	fmt.Println("shaker - cocktail recipe catalog with a local recipe shelf")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shaker -search <query>   Search the catalog and your custom recipes")
	fmt.Println("  shaker -id <id>          Show one cocktail (custom- ids resolve locally)")
	fmt.Println("  shaker -serve            Run the HTTP server")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
