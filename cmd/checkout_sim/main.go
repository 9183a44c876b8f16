package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/storefront/internal/adapter/handler/pb"
)

var products = []struct {
	name  string
	price string
}{
	{"Lavender Dream", "JMD 1,200.00"},
	{"Thyme Garden", "JMD 500.00"},
	{"Cedar Smoke", "JMD 800.00"},
}

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC address of the storefront")
	shoppers := flag.Int("shoppers", 50, "concurrent shoppers, one session each")
	clicks := flag.Int("clicks", 100, "concurrent add-to-cart calls on one shared session")
	flag.Parse()

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("failed to connect", zap.String("addr", *addr), zap.Error(err))
	}
	defer conn.Close()

	client := pb.NewCartServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ok := runShoppers(ctx, client, *shoppers)
	ok = runSharedSession(ctx, client, *clicks) && ok
	if !ok {
		os.Exit(1)
	}
}

// runShoppers sends each shopper through add, edit and checkout on its own
// session and checks every invoice.
func runShoppers(ctx context.Context, client pb.CartServiceClient, n int) bool {
	var success, failed atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(shopper int) {
			defer wg.Done()
			if err := shop(ctx, client, shopper); err != nil {
				fmt.Printf("shopper %d: %v\n", shopper, err)
				failed.Add(1)
				return
			}
			success.Add(1)
		}(i)
	}
	wg.Wait()

	fmt.Println("========== CHECKOUT SIMULATION ==========")
	fmt.Printf("Shoppers:         %d\n", n)
	fmt.Printf("Successful:       %d\n", success.Load())
	fmt.Printf("Failed:           %d\n", failed.Load())
	fmt.Printf("Duration:         %v\n", time.Since(start))
	fmt.Println("=========================================")

	if failed.Load() == 0 {
		fmt.Println("PASS: every shopper got a matching invoice")
		return true
	}
	fmt.Println("FAIL: some shoppers did not get a matching invoice")
	return false
}

func shop(ctx context.Context, client pb.CartServiceClient, shopper int) error {
	sid := uuid.NewString()

	for _, p := range products {
		if _, err := client.AddItem(ctx, &pb.AddItemRequest{SessionId: sid, Name: p.name, Price: p.price}); err != nil {
			return fmt.Errorf("add %s: %w", p.name, err)
		}
	}
	// Lavender x2, drop Thyme: 2*1200 + 800
	if _, err := client.UpdateQuantity(ctx, &pb.UpdateQuantityRequest{SessionId: sid, Index: 0, Qty: 2}); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if _, err := client.RemoveItem(ctx, &pb.RemoveItemRequest{SessionId: sid, Index: 1}); err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	order, err := client.PlaceOrder(ctx, &pb.PlaceOrderRequest{SessionId: sid, Customer: &pb.Customer{
		Fullname:   fmt.Sprintf("Shopper %d", shopper),
		Email:      fmt.Sprintf("shopper%d@example.com", shopper),
		Phone:      "876-555-0100",
		Address:    "1 Hope Rd",
		City:       "Kingston",
		Country:    "Jamaica",
		Postalcode: "JM1",
	}})
	if err != nil {
		return fmt.Errorf("place order: %w", err)
	}
	if order.Total != "JMD 3,200.00" || len(order.Items) != 2 {
		return fmt.Errorf("unexpected order: %d items totalling %s", len(order.Items), order.Total)
	}

	cart, err := client.GetCart(ctx, &pb.SessionRequest{SessionId: sid})
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) != 0 {
		return fmt.Errorf("cart not cleared after checkout: %d items", len(cart.Items))
	}
	return nil
}

// runSharedSession fires concurrent add-to-cart calls at one session. Calls
// on a session are serialised, so none of the increments may be lost.
func runSharedSession(ctx context.Context, client pb.CartServiceClient, n int) bool {
	sid := uuid.NewString()
	var failed atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.AddItem(ctx, &pb.AddItemRequest{SessionId: sid, Name: products[0].name, Price: products[0].price}); err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	cart, err := client.GetCart(ctx, &pb.SessionRequest{SessionId: sid})
	if err != nil {
		fmt.Printf("FAIL: get shared cart: %v\n", err)
		return false
	}

	want := int32(n) - failed.Load()
	if len(cart.Items) == 1 && cart.Items[0].Qty == want {
		fmt.Printf("PASS: shared session quantity %d after %d concurrent adds\n", want, n)
		return true
	}
	fmt.Printf("FAIL: expected one line with quantity %d, got %+v\n", want, cart.Items)
	return false
}
