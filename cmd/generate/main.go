// Command generate synthesizes the mock provider fixtures: 120 content
// records into mocks/provider1.json and 115 feed items into
// mocks/provider2.xml. The mocks directory must already exist; both files
// are fully overwritten on each run.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/onurerdog4n/mock-provider-api/internal/fixture"
)

const (
	jsonCount = 120
	xmlCount  = 115
	mocksDir  = "mocks"
)

func main() {
	now := uint64(time.Now().UnixNano())
	r := rand.New(rand.NewPCG(now, now>>32))

	contents := fixture.NewContentGenerator(r).Generate(jsonCount)
	contentStore := fixture.NewContentStore(filepath.Join(mocksDir, fixture.JSONFixtureFile))
	if err := contentStore.Save(&fixture.ContentDocument{Contents: contents}); err != nil {
		log.Fatalf("[GENERATE] %v", err)
	}

	items := fixture.NewFeedGenerator(r).Generate(xmlCount)
	feedStore := fixture.NewFeedStore(filepath.Join(mocksDir, fixture.XMLFixtureFile))
	if err := feedStore.SaveRendered(items); err != nil {
		log.Fatalf("[GENERATE] %v", err)
	}

	fmt.Printf("Generated %s (%d items) and %s (%d items)\n",
		fixture.JSONFixtureFile, jsonCount, fixture.XMLFixtureFile, xmlCount)
}
