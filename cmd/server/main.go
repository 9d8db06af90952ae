package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agroplan/config"
	"agroplan/database"
	"agroplan/entities"
	"agroplan/pkg/dataset"
	"agroplan/pkg/planner"
	"agroplan/router"

	// Farm
	farmCtrlImp "agroplan/pkg/farm/controllerImp"
	farmRepoImp "agroplan/pkg/farm/repositoryImp"

	// Plan
	planCtrlImp "agroplan/pkg/plan/controllerImp"
	planRepoImp "agroplan/pkg/plan/repositoryImp"
	planSvc "agroplan/pkg/plan/serviceImp"

	// Market
	marketCtrlImp "agroplan/pkg/market/controllerImp"

	// Health
	healthCtrlImp "agroplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	fRepo := farmRepoImp.New(db)

	// 3) Seed from the attachment workbooks on first boot
	if n, err := fRepo.CountPlots(); err == nil && n == 0 {
		if _, err := os.Stat(cfg.Attach1); err == nil {
			plots, crops, stats, plantings, err := dataset.LoadWorkbooks(cfg.Attach1, cfg.Attach2)
			if err != nil {
				log.Fatalf("load workbooks: %v", err)
			}
			if err := fRepo.SaveDataset(plots, crops, stats, plantings); err != nil {
				log.Fatalf("seed dataset: %v", err)
			}
			log.Printf("[db] seeded %d plots, %d crops, %d stats rows", len(plots), len(crops), len(stats))
		} else {
			log.Printf("[db] no attachment workbooks at %s, starting empty", cfg.Attach1)
		}
	}

	// 4) Dataset snapshot + optimizer wiring
	plots, crops, stats, plantings, err := fRepo.LoadAll()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	ds := dataset.New(plots, crops, stats, plantings)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	weights := planner.DefaultWeights()
	weights.MinPlots = cfg.MinPlots
	weights.MaxPlots = cfg.MaxPlots
	weights.MinArea = cfg.MinArea

	gen := planner.NewGenerator(ds, rng)
	eval := planner.NewEvaluator(ds, weights)
	validator := planner.NewValidator(ds, weights)
	opt := planner.NewOptimizer(ds, gen, eval, rng)
	opt.Restarts = cfg.Restarts
	opt.MaxPasses = cfg.MaxPasses

	pRepo := planRepoImp.New(db)
	pSvc := planSvc.NewPlanService(ds, opt, validator, pRepo, cfg.Horizon, cfg.OutputDir)

	// 5) Batch mode: run both scenarios, export, exit
	if cfg.RunBoth || hasArg("-both") {
		runBoth(pSvc)
		return
	}

	// 6) HTTP
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	fCtrl := farmCtrlImp.New(fRepo)
	plCtrl := planCtrlImp.New(pSvc)
	mkCtrl := marketCtrlImp.New(fRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(e, fCtrl, plCtrl, mkCtrl, hCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// runBoth optimizes and exports both market scenarios. A failure in one
// scenario does not stop the other.
func runBoth(svc interface {
	Generate(scenario string) (*entities.PlanRun, error)
	Export(runID string) (string, error)
}) {
	for _, scenario := range []string{entities.ScenarioShortage, entities.ScenarioMarkdown} {
		run, err := svc.Generate(scenario)
		if err != nil {
			log.Printf("[plan] scenario %s failed: %v", scenario, err)
			continue
		}
		path, err := svc.Export(run.RunID)
		if err != nil {
			log.Printf("[export] scenario %s failed: %v", scenario, err)
			continue
		}
		log.Printf("[plan] scenario %s done: fitness=%.2f -> %s", scenario, run.Fitness, path)
	}
}

func hasArg(want string) bool {
	for _, a := range os.Args[1:] {
		if a == want {
			return true
		}
	}
	return false
}
