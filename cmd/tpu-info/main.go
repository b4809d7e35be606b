package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/help"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/app"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/infrastructure/libtpu"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/infrastructure/mock"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/infrastructure/sysfs"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/ui/render"
)

func main() {
	var useMock, watch, debug bool
	var addr string
	flag.BoolVar(&useMock, "mock", false, "use mock repo")
	flag.BoolVar(&watch, "watch", false, "live view, refreshed continuously")
	flag.BoolVar(&debug, "debug", false, "print helpful debugging info")
	flag.StringVar(&addr, "addr", libtpu.DefaultAddr, "address of the libtpu metrics server")
	flag.Parse()
	help.Debug = debug

	var repoU domain.UsageRepo
	var repoT domain.TopologyRepo

	if useMock {
		repo := mock.New()
		repoU, repoT = repo, repo
	} else {
		repo, err := libtpu.New(addr)
		if err != nil {
			log.Fatal(err)
		}
		defer repo.Close()
		repoU, repoT = repo, sysfs.New()
	}

	ctx := context.Background()
	chipType, count, err := repoT.LocalChips(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if count == 0 {
		fmt.Println("No TPU chips found.")
		return
	}

	if watch {
		m := app.New(repoU, repoT, chipType, count)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	printChipInfo(ctx, repoU, repoT, chipType, addr)
}

// printChipInfo is the one-shot mode: a chip inventory table, then a
// utilization table if the metrics server is up.
func printChipInfo(ctx context.Context, repoU domain.UsageRepo, repoT domain.TopologyRepo, chipType domain.ChipType, addr string) {
	chips, err := repoT.Chips(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Chips(chipType, chips))

	usages, err := repoU.ChipUsage(ctx, chipType)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			help.Dbg("libtpu metrics unavailable. Did you start a workload with `TPU_RUNTIME_METRICS_PORTS=8431,8432,8433,8434`?")
			return
		}
		log.Fatal(err)
	}
	help.Dbg("connected to libtpu at grpc://%s", addr)

	fmt.Println(render.Usage(usages))
}
