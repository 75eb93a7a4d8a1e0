// Regenerates the shared article display fixture consumed by the contract
// tests. Run from the repository root:
//
//	go run ./scripts/generate-sample-display
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
	"github.com/goliatone/go-formdisplay/pkg/testsupport"
)

func main() {
	output := flag.String("output", "pkg/testsupport/testdata/core.entity_form_display.node.article.default.yml", "fixture output path")
	flag.Parse()

	m := testsupport.ArticleModel()
	if err := model.Lint(m); err != nil {
		log.Fatalf("fixture model is not clean: %v", err)
	}

	data, err := display.Encode(model.Generate(m))
	if err != nil {
		log.Fatalf("encode fixture: %v", err)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write fixture: %v", err)
	}
	fmt.Printf("Fixture written to %s\n", *output)
}
