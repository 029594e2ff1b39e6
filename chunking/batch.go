//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
	"trpc.group/trpc-go/trpc-ragkit-go/log"
)

// ChunkBatch chunks independent documents concurrently on a worker
// pool. Results keep the input order; a document that fails leaves a
// nil slot and the first error is returned after all workers finish.
func (s *StructuredChunking) ChunkBatch(docs []*document.Document, parallelism int) ([][]*document.Chunk, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, fmt.Errorf("failed to create chunking worker pool: %w", err)
	}
	defer pool.Release()

	results := make([][]*document.Chunk, len(docs))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, doc := range docs {
		wg.Add(1)
		idx, d := i, doc
		submitErr := pool.Submit(func() {
			defer wg.Done()
			chunks, err := s.Chunk(d)
			if err != nil {
				log.Errorf("failed to chunk document %d: %v", idx, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[idx] = chunks
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to submit chunking task: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()
	return results, firstErr
}
