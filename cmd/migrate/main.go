package main

import (
	"context"
	"flag"
	"log"

	"github.com/graeme-hill/calcstuff-go/store"
)

func main() {
	dir := flag.String("dir", "./store/migrations", "migrations directory")
	db := flag.String("db", "", "postgres connection string")
	flag.Parse()

	if *db == "" {
		log.Fatal("missing value: db")
	}

	ctx := context.Background()
	err := store.RunMigrations(ctx, *dir, *db)
	if err != nil {
		log.Fatalf("running migrations from %s: %v", *dir, err)
	}
	log.Println("migrations applied")
}
