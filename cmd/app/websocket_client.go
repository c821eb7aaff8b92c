package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

// Prints the documents a landlord stores while connected.
func main() {
	host := flag.String("host", "localhost:10000", "API host")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-host localhost:10000] <JWT_TOKEN>")
	}

	url := fmt.Sprintf("ws://%s/api/v1/documents/stream", *host)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))

	fmt.Printf("Connecting to %s...\n", url)
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("Failed to connect: %v (HTTP %d)", err, resp.StatusCode)
		}
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for documents...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}

			var event domain.DocumentEvent
			if err := json.Unmarshal(message, &event); err != nil {
				fmt.Printf("%s\n", string(message))
				continue
			}
			fmt.Printf("[%s] %s (%s) document=%s property=%s\n",
				event.CreatedAt.Format(time.RFC3339), event.Title, event.Category, event.DocumentID, event.PropertyID)
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
