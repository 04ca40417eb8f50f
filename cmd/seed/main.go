// Command seed loads an initial member roster from a YAML file into the
// configured store.
//
//	seed -file members.yaml [-force]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/config"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/database"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/repository"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/service"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/logger"
	"gopkg.in/yaml.v3"
)

func main() {
	file := flag.String("file", "members.yaml", "YAML list of members to insert")
	force := flag.Bool("force", false, "insert even when members already exist")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required to seed")
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()
	members, err := parseMembers(f)
	if err != nil {
		logger.Fatalf("%s: %v", *file, err)
	}

	ctx := context.Background()
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	store := repository.NewMongoStore(client.Database(cfg.MongoDB.Database))
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Warnf("ensure indexes: %v", err)
	}
	n, err := seed(ctx, service.New(store), members, *force)
	if errors.Is(err, errAlreadySeeded) {
		logger.Info(err.Error())
		return
	}
	if err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Infof("inserted %d members", n)
}

var errAlreadySeeded = errors.New("members already present, use -force to insert anyway")

// parseMembers decodes and validates a YAML list of members using the same
// rules as the HTTP API.
func parseMembers(r io.Reader) ([]models.MemberCreate, error) {
	var members []models.MemberCreate
	if err := yaml.NewDecoder(r).Decode(&members); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	v := validator.New()
	v.SetTagName("binding")
	for i, m := range members {
		if err := v.Struct(m); err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}
	return members, nil
}

func seed(ctx context.Context, svc *service.Service, members []models.MemberCreate, force bool) (int, error) {
	existing, err := svc.ListMembers(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 && !force {
		return 0, errAlreadySeeded
	}
	for i, m := range members {
		if _, err := svc.CreateMember(ctx, m); err != nil {
			return i, err
		}
	}
	return len(members), nil
}
