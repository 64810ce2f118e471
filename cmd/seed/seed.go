// Команда seed наполняет хранилище интересами клиентов,
// аналог фикстур интеграционных тестов.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/playmixer/scoring-api/internal/adapters/config"
	"github.com/playmixer/scoring-api/internal/adapters/storage"
	"github.com/playmixer/scoring-api/internal/core/scoring"
	"github.com/playmixer/scoring-api/pkg/logger"
)

var defaultInterests = map[int][]string{
	1: {"books", "music"},
	2: {"travel", "sports"},
	3: {"movies", "tech"},
}

func main() {
	file := flag.String("f", "", "json file with interests per client id")
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal(err)
	}

	lgr, err := logger.New(logger.SetLevel(cfg.LogLevel))
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.Cache)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	interests := defaultInterests
	if *file != "" {
		interests, err = loadInterests(*file)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	if err := storage.WaitReady(ctx, lgr, store, cfg.Cache.Probe); err != nil {
		log.Fatal(err)
	}

	srv := scoring.New(lgr, store)
	if err := srv.SeedInterests(ctx, interests); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("seeded interests for %d clients\n", len(interests))
}

func loadInterests(path string) (map[int][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err.Error())
	}

	raw := map[string][]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing file: %s", err.Error())
	}

	interests := make(map[int][]string, len(raw))
	for key, list := range raw {
		clientID, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("client id `%s` is not a number", key)
		}
		interests[clientID] = list
	}

	return interests, nil
}
