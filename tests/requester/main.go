package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// Posts random carts at the order API, handy for smoke testing the
// reservation path under light concurrent load.

var (
	addr  = flag.String("addr", "http://localhost:8080", "order service address")
	count = flag.Int("count", 10, "number of carts to post")
)

type item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type cart struct {
	CustomerEmail string  `json:"customer_email"`
	Items         []item  `json:"items"`
	ShippingCost  float64 `json:"shipping_cost"`
}

func main() {
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	for i := 0; i < *count; i++ {
		c := cart{
			CustomerEmail: fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
			Items: []item{
				{
					ProductID:   fmt.Sprintf("P%d", rand.Intn(5)+1),
					ProductName: "Oversized Hoodie",
					Quantity:    rand.Intn(3) + 1,
					UnitPrice:   float64(rand.Intn(4000)+500) / 100,
				},
			},
			ShippingCost: 4.99,
		}

		body, _ := json.Marshal(c)
		resp, err := client.Post(*addr+"/orders", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("request failed: %v", err)
			continue
		}
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("status=%d body=%s", resp.StatusCode, data)
	}
}
