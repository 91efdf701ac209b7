package filing

import (
	"log"
	"sync"

	"xbrl_fundamentals/pkg/core/concepts"
)

// BatchResult pairs one input with its parse outcome. A failed instance
// never aborts the batch; failures stay isolated per filing.
type BatchResult struct {
	Accession string
	Instance  *Instance
	Err       error
}

// BuildAll parses every input in parallel and returns results in input
// order. Instances share only the read-only store, so no coordination
// beyond the join is needed.
func BuildAll(inputs []Input, store *concepts.Store) []BatchResult {
	results := make([]BatchResult, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inst, err := Build(inputs[i], store)
			if err != nil {
				log.Printf("[FILING] %s: %v", inputs[i].Meta.AccessionNumber, err)
			}
			results[i] = BatchResult{
				Accession: inputs[i].Meta.AccessionNumber,
				Instance:  inst,
				Err:       err,
			}
		}(i)
	}
	wg.Wait()
	return results
}
