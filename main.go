// Command sfxgen renders the procedural sound-effect library to WAV
// files. Every effect is synthesized from code — no recorded audio —
// and a given seed always produces byte-identical output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/simukka/sfxgen/audio"
	"github.com/simukka/sfxgen/sfx"
)

func main() {
	outDir := flag.String("out", filepath.Join("assets", "audio"), "output directory for rendered WAV files")
	seed := flag.Uint("seed", 42, "base seed for the per-recipe noise streams")
	jobs := flag.Int("jobs", 1, "number of recipes to render in parallel")
	only := flag.String("only", "", "render a single effect by name")
	list := flag.Bool("list", false, "print the manifest and exit")
	flag.Parse()

	if *list {
		for _, r := range sfx.Library {
			fmt.Printf("%-18s %-26s %s\n", r.Name, r.File, r.Desc)
		}
		return
	}

	indices := make([]int, 0, len(sfx.Library))
	if *only != "" {
		_, i, ok := sfx.Find(*only)
		if !ok {
			log.Fatalf("unknown effect %q (use -list to see the manifest)", *only)
		}
		indices = append(indices, i)
	} else {
		for i := range sfx.Library {
			indices = append(indices, i)
		}
	}

	if *jobs < 1 {
		*jobs = 1
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	log.Printf("rendering %d effects to %s (seed %d)", len(indices), *outDir, *seed)

	var wg sync.WaitGroup
	work := make(chan int)
	var mu sync.Mutex
	failed := 0

	for w := 0; w < *jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				if err := renderOne(i, uint32(*seed), *outDir); err != nil {
					log.Printf("FAILED %s: %v", sfx.Library[i].Name, err)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, i := range indices {
		work <- i
	}
	close(work)
	wg.Wait()

	if failed > 0 {
		log.Printf("%d of %d effects failed", failed, len(indices))
		os.Exit(1)
	}
	log.Printf("done")
}

// renderOne synthesizes a single recipe and writes its WAV file.
// A failure is reported to the caller; it never aborts the batch.
func renderOne(index int, baseSeed uint32, outDir string) error {
	r := sfx.Library[index]
	buf, err := sfx.Render(index, baseSeed)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, r.File)
	if err := audio.Export(path, buf, audio.SampleRate); err != nil {
		return err
	}
	log.Printf("  wrote %-26s %.2fs", r.File, float64(len(buf))/audio.SampleRate)
	return nil
}
