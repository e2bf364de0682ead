package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"pharmacist/core/config"
	"pharmacist/core/loader"
	"pharmacist/core/storage"
	"pharmacist/feature/pharmacist"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if cfg.Data.Bucket != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
	}

	src, err := loader.NewSource(cfg.Data, client)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	fmt.Println("Loading game database...")
	db, err := loader.Load(ctx, src, cfg.Data.Locale)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d items, %d traders\n", len(db.Items), len(db.Traders))

	index := pharmacist.BuildBarterIndex(db.Traders, pharmacist.NewNicknameCache())
	fmt.Printf("Indexed %d templates with barter references\n", len(index))

	// With an argument, dump the references for that template only
	if len(os.Args) > 1 {
		tpl := os.Args[1]
		perOffer := index[tpl]
		if len(perOffer) == 0 {
			fmt.Printf("No references for %s\n", tpl)
			return
		}
		dumpOffers(tpl, perOffer)
		return
	}

	tpls := make([]string, 0, len(index))
	for tpl := range index {
		tpls = append(tpls, tpl)
	}
	sort.Strings(tpls)
	for _, tpl := range tpls {
		dumpOffers(tpl, index[tpl])
	}
}

func dumpOffers(tpl string, perOffer map[string][]*pharmacist.ReqRef) {
	fmt.Printf("\n=== %s ===\n", tpl)
	offerIDs := make([]string, 0, len(perOffer))
	for offerID := range perOffer {
		offerIDs = append(offerIDs, offerID)
	}
	sort.Strings(offerIDs)
	for _, offerID := range offerIDs {
		for _, ref := range perOffer[offerID] {
			live := "live"
			if !ref.Live() {
				live = "STALE"
			}
			fmt.Printf("%s %s: %g x %s (%s, trader %s)\n",
				ref.Path, live, ref.Req.Count, ref.Req.Tpl, ref.TraderNickname, ref.TraderID)
		}
	}
}
