package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linymin/nutriplan-365/internal/analysis"
	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/config"
	"github.com/linymin/nutriplan-365/internal/database"
	"github.com/linymin/nutriplan-365/internal/export"
	"github.com/linymin/nutriplan-365/internal/grocery"
	"github.com/linymin/nutriplan-365/internal/logger"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
	"github.com/linymin/nutriplan-365/internal/profile"
	"github.com/linymin/nutriplan-365/internal/recommend"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize()
	defer logger.Close()

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ingredients := catalog.NewIngredientCatalog()
	dishes := catalog.NewDishCatalog(ingredients)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
		mode := planCmd.String("mode", "general", "Dietary mode: muscle, fatloss or general")
		planCmd.Parse(os.Args[2:])
		runPlan(ctx, cfg, dishes, nutrition.Mode(*mode))
	case "grocery":
		runGrocery(ctx, cfg, dishes)
	case "analyze":
		runAnalyze(ctx, cfg, dishes)
	case "recommend":
		recCmd := flag.NewFlagSet("recommend", flag.ExitOnError)
		mode := recCmd.String("mode", "general", "Dietary mode: muscle, fatloss or general")
		topN := recCmd.Int("top", 15, "Maximum number of recommendations")
		recCmd.Parse(os.Args[2:])
		runRecommend(ingredients, nutrition.Mode(*mode), profileFlags(recCmd), *topN)
	case "targets":
		tgtCmd := flag.NewFlagSet("targets", flag.ExitOnError)
		mode := tgtCmd.String("mode", "general", "Dietary mode: muscle, fatloss or general")
		height := tgtCmd.Float64("height", 0, "Height in cm")
		weight := tgtCmd.Float64("weight", 0, "Weight in kg")
		freq := tgtCmd.String("freq", "", "Exercise frequency: none, light, moderate, frequent or daily")
		tgtCmd.Parse(os.Args[2:])
		runTargets(nutrition.Mode(*mode), *height, *weight, profile.ExerciseFrequency(*freq))
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func requireMode(mode nutrition.Mode) {
	if !mode.Valid() {
		log.Fatalf("Unknown mode %q; use muscle, fatloss or general", mode)
	}
}

func runPlan(ctx context.Context, cfg *config.Config, dishes *catalog.DishCatalog, mode nutrition.Mode) {
	requireMode(mode)

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	selection := dishes.Ingredients().All()
	report := planner.CheckIngredientsSufficiency(selection)
	if !report.Sufficient {
		for _, s := range report.Suggestions {
			logger.Warn("ingredient selection could be improved", zap.String("suggestion", s))
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	composer := planner.NewComposer(dishes, rng)
	generator := planner.NewGenerator(composer)

	weekStart := planner.WeekStart(time.Now())
	planRepo := planner.NewPlanRepository(db.SQL)
	if exists, err := planRepo.ExistsForWeek(ctx, cfg.UserID, weekStart); err == nil && exists {
		logger.Warn("replacing the stored plan for this week",
			zap.String("week_start", weekStart.Format("2006-01-02")))
	}

	plan := generator.GeneratePlan(mode, selection, weekStart)
	if err := planRepo.Save(ctx, cfg.UserID, plan); err != nil {
		log.Fatalf("Failed to save plan: %v", err)
	}
	logger.Info("weekly plan generated",
		zap.String("plan_id", plan.ID),
		zap.String("mode", string(mode)),
		zap.String("week_start", plan.WeekStart.Format("2006-01-02")))

	fmt.Println(export.FormatWeeklyPlan(plan))
}

func runGrocery(ctx context.Context, cfg *config.Config, dishes *catalog.DishCatalog) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	planRepo := planner.NewPlanRepository(db.SQL)
	plan, err := planRepo.Load(ctx, cfg.UserID, planner.WeekStart(time.Now()))
	if err != nil {
		log.Fatalf("Failed to load plan: %v", err)
	}
	if plan == nil {
		log.Fatal("No plan for this week yet; run `nutriplan plan` first")
	}

	aggregator := grocery.NewAggregator(dishes)
	fmt.Println(export.FormatGroceryList(aggregator.FromPlan(plan)))
}

func runAnalyze(ctx context.Context, cfg *config.Config, dishes *catalog.DishCatalog) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	planRepo := planner.NewPlanRepository(db.SQL)
	weekStart := planner.WeekStart(time.Now())
	plan, err := planRepo.Load(ctx, cfg.UserID, weekStart)
	if err != nil {
		log.Fatalf("Failed to load plan: %v", err)
	}
	if plan == nil {
		log.Fatal("No plan for this week yet; run `nutriplan plan` first")
	}

	recordRepo := analysis.NewRecordRepository(db.SQL)
	var previous *nutrition.Info
	if prev, err := recordRepo.GetByWeek(ctx, cfg.UserID, weekStart.AddDate(0, 0, -7)); err == nil && prev != nil {
		previous = &prev.ActualNutrition
	}

	a := analysis.Analyze(plan, previous)
	if err := recordRepo.Save(ctx, cfg.UserID, analysis.BuildRecord(plan, dishes)); err != nil {
		logger.Warn("failed to save diet record", zap.Error(err))
	}

	fmt.Println(export.FormatAnalysis(a))
}

func runRecommend(ingredients *catalog.IngredientCatalog, mode nutrition.Mode, p *profile.UserProfile, topN int) {
	requireMode(mode)

	recommender := recommend.NewRecommender(ingredients)
	ids := recommender.Recommend(mode, p, topN)
	if len(ids) == 0 {
		fmt.Println("No recommendations for this mode and profile.")
		return
	}

	fmt.Printf("🥗 Recommended ingredients — %s\n\n", export.ModeLabel(mode))
	for _, id := range ids {
		ing, ok := ingredients.ByID(id)
		if !ok {
			continue
		}
		fmt.Printf("• %s %s — %s\n", ing.DisplayIcon(), ing.Name, recommend.Reason(ing, mode))
	}
}

func runTargets(mode nutrition.Mode, height, weight float64, freq profile.ExerciseFrequency) {
	requireMode(mode)

	p := &profile.UserProfile{ExerciseFrequency: freq}
	if height > 0 {
		p.HeightCm = &height
	}
	if weight > 0 {
		p.WeightKg = &weight
	}

	bmr := nutrition.CalculateBMR(p)
	tdee := nutrition.CalculateTDEE(bmr, freq)
	fmt.Println(export.FormatTargets(nutrition.TargetFor(mode, p), bmr, tdee))
}

// profileFlags builds a profile from the environment for the recommend
// command; body metrics are irrelevant to ingredient scoring.
func profileFlags(fs *flag.FlagSet) *profile.UserProfile {
	p := &profile.UserProfile{}
	for _, arg := range fs.Args() {
		p.DietaryRestrictions = append(p.DietaryRestrictions, arg)
	}
	return p
}

func printUsage() {
	fmt.Println("Usage: nutriplan <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan       Generate and store this week's meal plan")
	fmt.Println("  grocery    Print the shopping list for the stored plan")
	fmt.Println("  analyze    Analyze the stored plan's adherence and balance")
	fmt.Println("  recommend  Rank ingredients for a mode (extra args are restriction tags)")
	fmt.Println("  targets    Compute calorie and macro targets")
}
