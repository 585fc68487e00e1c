// Command annotate annotates a single review and prints the result as JSON.
//
//	annotate -category electronics -brand Apple "Battery life is great 😍"
//	echo "Screen cracked after a week" | annotate
//	annotate -lookup review-123
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/bootstrap"
	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/db"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/models"
)

func main() {
	var (
		product models.ProductContext
		lookup  string
	)
	flag.StringVar(&product.ProductID, "product-id", "", "product identifier")
	flag.StringVar(&product.ProductName, "product", "", "product name")
	flag.StringVar(&product.Brand, "brand", "", "product brand")
	flag.StringVar(&product.Category, "category", "", "product category")
	flag.StringVar(&product.Subcategory, "subcategory", "", "product subcategory")
	flag.StringVar(&lookup, "lookup", "", "print the stored annotation for this review id instead")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		fail("invalid configuration", err)
	}
	logging.InitLogger(settings.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), settings.AnnotateTimeout+30*time.Second)
	defer cancel()

	var out any
	if lookup != "" {
		out, err = stored(ctx, settings, lookup)
	} else {
		out, err = annotate(ctx, settings, product)
	}
	if err != nil {
		fail("annotate failed", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fail("failed to encode result", err)
	}
}

func annotate(ctx context.Context, settings *config.Settings, product models.ProductContext) (models.AnnotationResult, error) {
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return models.AnnotationResult{}, fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}

	cat, err := catalog.Load(settings.CatalogPath)
	if err != nil {
		return models.AnnotationResult{}, err
	}

	pipeline, err := bootstrap.NewPipeline(settings, cat)
	if err != nil {
		return models.AnnotationResult{}, err
	}
	defer pipeline.Close()

	annotateCtx, cancel := context.WithTimeout(ctx, settings.AnnotateTimeout)
	defer cancel()
	return pipeline.Annotator.Annotate(annotateCtx, text, product), nil
}

func stored(ctx context.Context, settings *config.Settings, reviewID string) (models.ReviewAnnotation, error) {
	dynamo, err := clients.GetDynamoDBClient(ctx)
	if err != nil {
		return models.ReviewAnnotation{}, err
	}

	annotation, ok, err := db.NewAnnotationStore(dynamo, settings.DynamoDBTable).GetAnnotation(ctx, reviewID)
	if err != nil {
		return models.ReviewAnnotation{}, err
	}
	if !ok {
		return models.ReviewAnnotation{}, fmt.Errorf("no annotation stored for review %s", reviewID)
	}
	return annotation, nil
}

func fail(msg string, err error) {
	slog.Error("[Annotate] "+msg, slog.String("error", err.Error()))
	os.Exit(1)
}
