// ABOUTME: Basic example showing species cards, search and comments with the BearPage library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	bearpage "bearpage/bearpage-lib"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const pageHTML = `<!DOCTYPE html>
<html>
<body>
  <article><h2>Wild bears</h2><p>The brown bear is one of the largest land carnivores.</p></article>
  <section class="more_bears"></section>
  <button id="toggle-comments">Show comment</button>
  <div id="comment-wrapper"><ul id="comment-list"></ul></div>
</body>
</html>`

func main() {
	// Example 1: Create a client with default configuration
	client, err := bearpage.NewClient()
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	// Example 2: Load species directly
	fmt.Println("=== Loading Species ===")
	for _, s := range client.LoadSpecies(context.Background(), "") {
		fmt.Printf("- %s (%s): %s\n", s.CommonName, s.ScientificName, s.Range)
	}

	// Example 3: Render species cards into a page
	fmt.Println("\n=== Rendering Page ===")
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		log.Fatal("Failed to parse page:", err)
	}

	count, err := client.RenderPage(context.Background(), doc, "")
	if err != nil {
		log.Fatal("Failed to render page:", err)
	}
	fmt.Printf("Rendered %d cards\n", count)

	// Example 4: Highlight search matches inside articles
	fmt.Println("\n=== Searching ===")
	fmt.Printf("Matches for %q: %d\n", "brown", client.Search(doc, "brown"))

	// Example 5: Comments
	fmt.Println("\n=== Comments ===")
	sel := goquery.NewDocumentFromNode(doc)
	panel := client.NewCommentPanel()
	panel.HandleKey("Enter")
	panel.Apply(sel.Find("#comment-wrapper").Nodes[0], sel.Find("#toggle-comments").Nodes[0])
	fmt.Println("Toggle label:", panel.Label())

	list := sel.Find("#comment-list").Nodes[0]
	if _, err := client.SubmitComment(list, "", "Nice bears"); err != nil {
		if bearpage.IsValidationError(err) {
			fmt.Println("Rejected:", err)
		}
	}
	if c, err := client.SubmitComment(list, "Ada", "Nice bears"); err == nil {
		fmt.Printf("Added comment from %s\n", c.Name)
	}

	fmt.Println("\n=== Resulting HTML ===")
	if err := html.Render(os.Stdout, doc); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}
