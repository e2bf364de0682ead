package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pharmacist/core/loader"
	"pharmacist/core/utils"
	"pharmacist/feature/pharmacist"
	"pharmacist/feature/pharmacist/models"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemCmd inspects a single item: how it classifies, what it costs, and
// which trader offers require it.
var itemCmd = &cobra.Command{
	Use:   "item [identifier]",
	Short: "View an item's classification, price and barter references",
	Long: `Resolves the identifier to an item template by exact template ID,
exact short name, or the closest short name by edit distance, and prints how
the rebalancing pass would see it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runItemDetail(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}

func runItemDetail(ctx context.Context, identifier string) {
	cfg, logg, src := bootstrap()

	db, err := loader.Load(ctx, src, cfg.Data.Locale)
	if err != nil {
		logg.Fatal("Failed to load game database", zap.Error(err))
	}

	tpl, distance := resolveTemplate(db, cfg.Data.Locale, identifier)
	if tpl == "" {
		logg.Fatal("No item matches the identifier", zap.String("identifier", identifier))
	}
	item := db.Items[tpl]

	shortName := tpl
	if locale, ok := db.Locales[cfg.Data.Locale]; ok {
		if sn, ok := locale.ShortName(tpl); ok {
			shortName = sn
		}
	}

	// Pretty Console Output
	fmt.Println("\n--- Item Detail View ---")
	fmt.Printf("Query:          %s\n", identifier)
	if distance > 0 {
		fmt.Printf("Matched:        %s (edit distance %d)\n", shortName, distance)
	}
	fmt.Printf("Template:       %s\n", tpl)
	fmt.Printf("ShortName:      %s\n", shortName)
	fmt.Printf("Parent:         %s\n", item.Parent)

	candidates := pharmacist.Classify(item)
	if len(candidates) == 0 {
		fmt.Println("Categories:     (none; out of scope)")
	} else {
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = string(c)
		}
		fmt.Printf("Categories:     %s\n", strings.Join(names, " > "))
	}

	if uses, ok := item.Props.MaxHpResource(); ok {
		fmt.Printf("MaxHpResource:  %g\n", uses)
	} else {
		fmt.Println("MaxHpResource:  (absent)")
	}
	if v, ok := item.Props["medUseTime"]; ok {
		fmt.Printf("Use time:       %ss\n", utils.ToString(v))
	}

	price := "(not in handbook)"
	if db.Handbook != nil {
		for _, entry := range db.Handbook.Items {
			if entry != nil && entry.ID == tpl {
				price = fmt.Sprintf("%g", entry.Price)
				break
			}
		}
	}
	fmt.Printf("Handbook price: %s\n", price)

	index := pharmacist.BuildBarterIndex(db.Traders, pharmacist.NewNicknameCache())
	fmt.Println("------------------------")
	perOffer := index[tpl]
	if len(perOffer) == 0 {
		fmt.Println("No trader offers sell this template.")
		return
	}

	offerIDs := make([]string, 0, len(perOffer))
	for offerID := range perOffer {
		offerIDs = append(offerIDs, offerID)
	}
	sort.Strings(offerIDs)
	for _, offerID := range offerIDs {
		for _, ref := range perOffer[offerID] {
			nick := ref.TraderNickname
			if nick == "" {
				nick = ref.TraderID
			}
			fmt.Printf("%s %s requires %g x %s\n", nick, ref.Path, ref.Req.Count, ref.Req.Tpl)
		}
	}
}

// resolveTemplate maps an identifier to a template ID: exact ID first, then
// exact short name, then the nearest short name by Levenshtein distance.
// The returned distance is 0 for exact matches.
func resolveTemplate(db *models.Database, lang, identifier string) (string, int) {
	if _, ok := db.Items[identifier]; ok {
		return identifier, 0
	}

	locale, ok := db.Locales[lang]
	if !ok {
		return "", 0
	}

	bestTpl := ""
	bestDistance := -1
	query := strings.ToLower(identifier)
	for tpl := range db.Items {
		sn, ok := locale.ShortName(tpl)
		if !ok || sn == "" {
			continue
		}
		name := strings.ToLower(sn)
		if name == query {
			return tpl, 0
		}
		d := levenshtein.ComputeDistance(query, name)
		if bestDistance < 0 || d < bestDistance || (d == bestDistance && tpl < bestTpl) {
			bestTpl = tpl
			bestDistance = d
		}
	}

	// Reject matches that share almost nothing with the query
	if bestDistance < 0 || bestDistance > len(identifier) {
		return "", 0
	}
	return bestTpl, bestDistance
}
