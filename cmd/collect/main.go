package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/OsherKoren/trip-assistant/pkg/utils"
	"github.com/gocolly/colly/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// GuidePage is a destination guide fetched to supplement the hand-written
// itinerary documents. Collected guides land in the data directory as
// "<key>_guide.txt" and feed the general topic's concatenated context.
type GuidePage struct {
	Key string
	URL string
}

var guidePages = []GuidePage{
	{Key: "aosta_valley", URL: "https://en.wikivoyage.org/wiki/Aosta_Valley"},
	{Key: "chamonix", URL: "https://en.wikivoyage.org/wiki/Chamonix"},
	{Key: "annecy", URL: "https://en.wikivoyage.org/wiki/Annecy"},
	{Key: "geneva", URL: "https://en.wikivoyage.org/wiki/Geneva"},
}

var (
	dryRun  = flag.Bool("dry-run", false, "Don't write files, just print what would be collected")
	outDir  = flag.String("out", "data", "Directory to write collected guides into")
	limit   = flag.Int("limit", 0, "Limit number of pages to collect (0 = all)")
	delay   = flag.Duration("delay", 2*time.Second, "Delay between requests")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
)

var whitespacePattern = regexp.MustCompile(`[ \t]+`)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.Info("Starting destination guide collector...")

	pages := guidePages
	if *limit > 0 && *limit < len(pages) {
		pages = pages[:*limit]
	}

	c := colly.NewCollector(
		colly.UserAgent("TripAssistant-Collector/1.0"),
	)
	c.Limit(&colly.LimitRule{
		DomainGlob: "*.wikivoyage.org",
		Delay:      *delay,
	})
	c.SetRequestTimeout(30 * time.Second)

	collected := 0
	for i, page := range pages {
		logger.WithFields(logrus.Fields{
			"page":     page.Key,
			"progress": fmt.Sprintf("%d/%d", i+1, len(pages)),
		}).Info("Collecting guide page")

		if err := collectPage(c.Clone(), page, logger); err != nil {
			logger.WithError(err).WithField("page", page.Key).Error("Failed to collect page")
			continue
		}
		collected++
	}

	logger.WithFields(logrus.Fields{
		"collected": collected,
		"total":     len(pages),
	}).Info("Guide collection completed")
}

func collectPage(c *colly.Collector, page GuidePage, logger *logrus.Logger) error {
	var content string
	var fetchErr error

	c.OnHTML("#mw-content-text", func(e *colly.HTMLElement) {
		// Strip navigation chrome before taking the text
		e.DOM.Find(".navbox, .infobox, .toc, .printfooter, .mw-editsection, .noprint").Remove()
		content = cleanText(e.DOM.Text())
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(page.URL); err != nil {
		return fmt.Errorf("failed to visit page: %w", err)
	}
	if fetchErr != nil {
		return fmt.Errorf("fetch error: %w", fetchErr)
	}
	if content == "" {
		return fmt.Errorf("no content extracted from page")
	}

	if *dryRun {
		logger.WithFields(logrus.Fields{
			"page":           page.Key,
			"content_length": len(content),
		}).Info("DRY RUN: Would write guide")
		return nil
	}

	filename := filepath.Join(*outDir, page.Key+"_guide.txt")
	header := fmt.Sprintf("Destination guide for %s (collected from %s)\n\n", page.Key, page.URL)

	if err := os.WriteFile(filename, []byte(header+content), 0o644); err != nil {
		return fmt.Errorf("failed to write guide: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"page": page.Key,
		"file": filename,
	}).Info("Guide written")

	return nil
}

func cleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(whitespacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
