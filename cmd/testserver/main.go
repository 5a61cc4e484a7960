//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
)

// /{YYYY-MM}/{DD}/{filename}
var contentPath = regexp.MustCompile(`^/\d{4}-\d{2}/\d{2}/[^/]+$`)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	contentType := flag.String("content-type", "image/webp", "Content-Type of the served file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <comic-file>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filePath := args[0]
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		log.Fatalf("Comic file does not exist: %s", filePath)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if !contentPath.MatchString(r.URL.Path) {
			http.NotFound(w, r)
			log.Printf("Not found: %s", r.URL.Path)
			return
		}
		serveFile(w, filePath, *contentType)
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Serving %s -> http://localhost%s/YYYY-MM/DD/original", filePath, addr)
	log.Printf("Run the bot with CONTENT_BASE_URL=http://localhost%s", addr)
	log.Println("\nThe file is read on each request, so you can replace it while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
