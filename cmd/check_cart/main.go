package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	cartrepo "github.com/light-bringer/storefront-service/internal/app/cart/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_cart"
)

func main() {
	dbPath := flag.String("db", "data/cartdb", "path to the cart store directory")
	cartID := flag.String("cart", m_cart.DefaultSlot, "cart slot id to dump")
	flag.Parse()

	store, err := cartrepo.NewPebbleStore(*dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open cart store: %v", err)
	}
	defer store.Close()

	cart, err := store.Load(context.Background(), *cartID)
	if err != nil {
		log.Fatalf("Failed to load cart: %v", err)
	}

	fmt.Printf("Cart %q:\n", cart.ID())
	if cart.IsEmpty() {
		fmt.Println("  (empty)")
		return
	}
	for i, line := range cart.Lines() {
		p := line.Product()
		fmt.Printf("%d. %s (%s) x%d @ %s = %s\n",
			i+1, p.Name, p.SKU, line.Quantity(), p.Price, line.Subtotal())
	}
	fmt.Printf("\nTotal items: %d\n", cart.TotalItems())
	fmt.Printf("Total price: %s\n", cart.TotalPrice())
}
