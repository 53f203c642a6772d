package scan

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/unexotica/internal/catalog"
	"github.com/llehouerou/unexotica/internal/state"
)

// writeBatch is how many results are stored per transaction.
const writeBatch = 100

// processFiles decodes files in parallel and stores the results.
func (s *Scanner) processFiles(
	ctx context.Context,
	splitter *catalog.Splitter,
	toProcess []fileInfo,
	isNew map[string]bool,
	stats *Stats,
	send func(Progress),
) error {
	total := len(toProcess)
	var processed atomic.Int64

	workCh := make(chan fileInfo, total)
	resultCh := make(chan fileResult, total)

	// Decoders are pure, so workers share nothing but the channels
	var wg sync.WaitGroup
	for range s.workers() {
		wg.Go(func() {
			for f := range workCh {
				if ctx.Err() != nil {
					processed.Add(1)
					continue
				}
				resultCh <- s.processFile(splitter, f, isNew[f.path])
				processed.Add(1)
			}
		})
	}

	go func() {
		for _, f := range toProcess {
			workCh <- f
		}
		close(workCh)
	}()

	// Progress reporter
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				send(Progress{Phase: PhaseProcessing, Current: int(processed.Load()), Total: total})
			case <-done:
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Collect results and write them sequentially (one sqlite writer)
	var storeErr error
	batch := make([]fileResult, 0, writeBatch)
	flush := func() {
		if storeErr == nil && len(batch) > 0 {
			storeErr = s.storeBatch(batch, stats)
		}
		batch = batch[:0]
	}
	for r := range resultCh {
		if r.err != nil {
			rs := stats.ByRoot[r.file.root]
			rs.Failed = append(rs.Failed, r.file.name)
			continue
		}
		batch = append(batch, r)
		if len(batch) == writeBatch {
			flush()
		}
	}
	flush()

	close(done)
	<-stopped
	if storeErr != nil {
		return storeErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	send(Progress{Phase: PhaseProcessing, Current: total, Total: total})
	return nil
}

// storeBatch writes batch in one transaction and records it in stats.
func (s *Scanner) storeBatch(batch []fileResult, stats *Stats) error {
	assets := make([]state.Asset, len(batch))
	for i, r := range batch {
		assets[i] = r.asset
	}
	if err := s.Store.PutAssets(assets); err != nil {
		return err
	}
	for _, r := range batch {
		rs := stats.ByRoot[r.file.root]
		if r.isNew {
			rs.Added = append(rs.Added, r.file.name)
		} else {
			rs.Updated = append(rs.Updated, r.file.name)
		}
	}
	return nil
}

func (s *Scanner) processFile(splitter *catalog.Splitter, f fileInfo, isNew bool) fileResult {
	file, err := Open(f.path, s.Samples)
	if err != nil {
		return fileResult{file: f, err: err}
	}
	_, name, _ := Classify(f.name)
	return fileResult{
		file: f,
		asset: state.Asset{
			Path:      f.path,
			Mtime:     f.mtime,
			Size:      file.Size(),
			Kind:      file.Kind,
			Subsongs:  splitter.Subsongs(s.Title, name, file.Data, file.Bundle),
			Inputs:    f.inputs,
			ScannedAt: time.Now(),
		},
		isNew: isNew,
	}
}
