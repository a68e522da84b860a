// Interactive 2-D point cloud editor in pure Go.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/jmigpin/pointcloud/core"
	"github.com/jmigpin/pointcloud/pcloud"
)

func main() {
	log.SetFlags(log.Llongfile)

	opt := &core.Options{}
	flag.StringVar(&opt.Font, "font", "", "truetype font filename for the status bar (builtin if empty)")
	flag.Float64Var(&opt.FontSize, "fontsize", 14, "")
	flag.Float64Var(&opt.DPI, "dpi", 72, "monitor dots per inch")
	flag.Float64Var(&opt.Radius, "radius", pcloud.DefaultTestRadius, "point hit test radius in world units")
	flag.BoolVar(&opt.Unsorted, "unsorted", false, "don't maintain order indexes (no hit testing)")
	flag.BoolVar(&opt.Debug, "dbg", false, "check index consistency after every mutation")
	flag.StringVar(&opt.CpuProfile, "cpuprofile", "", "profile cpu filename")
	flag.Parse()
	opt.Filename = flag.Arg(0)

	if opt.CpuProfile != "" {
		f, err := os.Create(opt.CpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := core.RunApp(opt); err != nil {
		log.Fatal(err)
	}
}
