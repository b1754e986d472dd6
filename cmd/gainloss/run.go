package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arborlex/gainloss/ancestral"
	"github.com/arborlex/gainloss/config"
	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/gml"
	"github.com/arborlex/gainloss/network"
	"github.com/arborlex/gainloss/newick"
	"github.com/arborlex/gainloss/pap"
	"github.com/arborlex/gainloss/report"
	"github.com/arborlex/gainloss/stats"
	"github.com/arborlex/gainloss/tree"
	"github.com/arborlex/gainloss/wordlist"
)

// RunDataset drives the full pipeline for one dataset across every
// configured mode: solve GLS per character, build the evolutionary
// network, project ancestral states, run the distribution analyser, and
// emit every report artifact of spec §6. Per-character failures that spec
// §7 marks non-fatal (EmptyCharacter, SolverExhausted) are logged and the
// character is skipped; any other error aborts the dataset.
func RunDataset(ctx context.Context, log *slog.Logger, cfg *config.Config) error {
	wlFile, err := os.Open(cfg.Wordlist)
	if err != nil {
		return fmt.Errorf("gainloss: opening wordlist: %w", err)
	}
	defer wlFile.Close()
	idx, err := wordlist.BuildIndex(wlFile)
	if err != nil {
		return fmt.Errorf("gainloss: building PAP index: %w", err)
	}

	treeFile, err := os.Open(cfg.Tree)
	if err != nil {
		return fmt.Errorf("gainloss: opening tree: %w", err)
	}
	treeBytes, err := os.ReadFile(cfg.Tree)
	treeFile.Close()
	if err != nil {
		return fmt.Errorf("gainloss: reading tree: %w", err)
	}
	t, err := newick.Parse(string(treeBytes))
	if err != nil {
		return fmt.Errorf("gainloss: parsing tree: %w", err)
	}

	layout := &gml.Layout{Positions: map[string]gml.NodePosition{}}
	if cfg.Layout != "" {
		layoutFile, err := os.Open(cfg.Layout)
		if err != nil {
			return fmt.Errorf("gainloss: opening layout: %w", err)
		}
		layout, err = gml.ReadLayout(layoutFile)
		layoutFile.Close()
		if err != nil {
			return fmt.Errorf("gainloss: parsing layout: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, "gls"), 0o755); err != nil {
		return fmt.Errorf("gainloss: preparing output dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, "stats"), 0o755); err != nil {
		return fmt.Errorf("gainloss: preparing output dir: %w", err)
	}

	weightedSolver := gls.NewWeightedSolver(t)
	restrictedSolver := gls.NewRestrictedSolver(t)

	var datasetRows []report.DatasetModeRow
	for _, spec := range cfg.Modes {
		mode, err := config.ParseMode(spec)
		if err != nil {
			return err
		}
		if err := runMode(ctx, log, cfg, t, idx, layout, weightedSolver, restrictedSolver, mode, &datasetRows); err != nil {
			return err
		}
	}

	datasetStatsPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-dataset.stats", cfg.Dataset))
	f, err := os.Create(datasetStatsPath)
	if err != nil {
		return fmt.Errorf("gainloss: creating dataset stats file: %w", err)
	}
	defer f.Close()
	return report.WriteDatasetStats(f, datasetRows)
}

func runMode(
	ctx context.Context,
	log *slog.Logger,
	cfg *config.Config,
	t *tree.Tree,
	idx *pap.Index,
	layout *gml.Layout,
	weightedSolver *gls.WeightedSolver,
	restrictedSolver *gls.RestrictedSolver,
	mode config.ParsedMode,
	datasetRows *[]report.DatasetModeRow,
) error {
	scenarios := make(map[string]gls.GLS)
	projections := make([]ancestral.States, 0, idx.CountNonSingleton())

	for _, charKey := range idx.NonSingletonCharacters() {
		var scenario gls.GLS
		var err error
		switch mode.Kind {
		case config.ModeWeighted:
			scenario, err = weightedSolver.Solve(idx, charKey, mode.GainWeight, mode.LossWeight)
		default:
			scenario, err = restrictedSolver.Solve(idx, charKey, mode.Restriction)
		}
		if err != nil {
			if !errors.Is(err, gls.ErrEmptyCharacter) && !errors.Is(err, gls.ErrSolverExhausted) {
				return fmt.Errorf("gainloss: solving %q in mode %q: %w", charKey, mode.Spec, err)
			}
			log.Warn("skipping character", "character", charKey, "mode", mode.Spec, "error", err)
			continue
		}
		scenarios[charKey] = scenario

		states, err := ancestral.Project(t, t.Root(), scenario)
		if err != nil {
			return fmt.Errorf("gainloss: projecting ancestral states for %q: %w", charKey, err)
		}
		projections = append(projections, states)
	}
	if len(scenarios) == 0 {
		log.Warn("no admissible scenarios for mode", "mode", mode.Spec)
		return nil
	}

	result, err := network.Build(ctx, t.PreOrder(), scenarios, cfg.Workers)
	if err != nil {
		return fmt.Errorf("gainloss: building network for mode %q: %w", mode.Spec, err)
	}

	if err := writeModeReports(cfg, t, idx, layout, scenarios, result, mode); err != nil {
		return err
	}

	nonTips, err := t.NonTips(t.Root())
	if err != nil {
		return err
	}
	contemporary, err := stats.ContemporaryVocabSizes(idx)
	if err != nil {
		return err
	}
	ancestralSizes := stats.AncestralVocabSizes(nonTips, projections)
	u := stats.MannWhitneyU(contemporary, ancestralSizes)

	ano, mno := originStats(scenarios)
	*datasetRows = append(*datasetRows, report.DatasetModeRow{
		Mode: mode.Spec,
		ANO:  ano,
		MNO:  mno,
		VSDz: u.Z,
		VSDp: u.PValue,
	})
	return nil
}

func writeModeReports(
	cfg *config.Config,
	t *tree.Tree,
	idx *pap.Index,
	layout *gml.Layout,
	scenarios map[string]gls.GLS,
	result *network.Result,
	mode config.ParsedMode,
) error {
	glsPath := filepath.Join(cfg.OutputDir, "gls", fmt.Sprintf("%s-%s.gls", cfg.Dataset, mode.Spec))
	f, err := os.Create(glsPath)
	if err != nil {
		return err
	}
	err = report.WriteGLS(f, scenarios)
	f.Close()
	if err != nil {
		return err
	}

	ano, mno := originStats(scenarios)
	statsSpec := report.ModeStats{
		TotalPAPs:        idx.CountTotal(),
		NonSingletonPAPs: idx.CountNonSingleton(),
		Singletons:       idx.CountSingleton(),
		AverageOrigins:   ano,
		MaxOrigins:       mno,
		Mode:             mode.Spec,
	}
	if mode.Kind == config.ModeWeighted {
		ratio := [2]int64{mode.GainWeight, mode.LossWeight}
		statsSpec.Ratio = &ratio
	} else {
		k := mode.Restriction
		statsSpec.Restriction = &k
	}
	statsPath := filepath.Join(cfg.OutputDir, "stats", fmt.Sprintf("%s-%s", cfg.Dataset, mode.Spec))
	f, err = os.Create(statsPath)
	if err != nil {
		return err
	}
	err = report.WriteStats(f, statsSpec)
	f.Close()
	if err != nil {
		return err
	}

	csvPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s.csv", cfg.Dataset, mode.Spec))
	f, err = os.Create(csvPath)
	if err != nil {
		return err
	}
	err = report.WriteLateralCSV(f, result.PerCharacterLateral)
	f.Close()
	if err != nil {
		return err
	}

	gmlPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s.gml", cfg.Dataset, mode.Spec))
	f, err = os.Create(gmlPath)
	if err != nil {
		return err
	}
	edges := networkEdges(t, result, cfg.Threshold)
	err = gml.WriteNetwork(f, layout, edges)
	f.Close()
	return err
}

func networkEdges(t *tree.Tree, result *network.Result, threshold int64) []gml.NetworkEdge {
	var edges []gml.NetworkEdge
	for _, name := range t.PreOrder() {
		parent, ok, _ := t.Parent(name)
		if !ok {
			continue
		}
		edges = append(edges, gml.NetworkEdge{Source: parent, Target: name, Kind: gml.Vertical, Color: "#888888"})
	}
	for _, e := range result.Lateral.Edges(threshold) {
		edges = append(edges, gml.NetworkEdge{
			Source: e.From, Target: e.To, Kind: gml.Horizontal,
			Weight: e.Weight, Cogs: e.Cogs, Color: "#d62728",
		})
	}
	return edges
}

func originStats(scenarios map[string]gls.GLS) (ano float64, mno int) {
	if len(scenarios) == 0 {
		return 0, 0
	}
	total := 0
	for _, s := range scenarios {
		n := len(s.Origins())
		total += n
		if n > mno {
			mno = n
		}
	}
	return float64(total) / float64(len(scenarios)), mno
}
