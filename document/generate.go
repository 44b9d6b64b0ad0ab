package document

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	f2f "github.com/dougbrierley/F2F"
	"github.com/dougbrierley/F2F/render"
)

// Store saves finished documents and knows the link a saved key will be
// retrievable at. Link must be computable before the save: it is printed
// inside the document being built.
type Store interface {
	Save(ctx context.Context, key string, body *bytes.Buffer) error
	Link(key string) string
}

// Result reports the outcome of one document in a batch.
type Result struct {
	Party string // buyer or seller the document is for
	Key   string // storage key / file name
	Link  string // retrievable link, empty for stores without one
	Err   error
}

// Generator turns batches of records into stored documents. Documents in a
// batch are independent, so they are built and saved concurrently; one
// document failing does not stop the rest.
type Generator struct {
	st    Stationery
	store Store
	log   *zap.Logger
}

// NewGenerator returns a Generator writing to store. log may not be nil;
// pass zap.NewNop() to discard progress output.
func NewGenerator(st Stationery, store Store, log *zap.Logger) *Generator {
	return &Generator{st: st, store: store, log: log}
}

// Orders generates one document per buyer with at least one line.
func (g *Generator) Orders(ctx context.Context, orders []f2f.Order) []Result {
	var jobs []job
	for _, o := range orders {
		if len(o.Lines) == 0 {
			continue
		}
		jobs = append(jobs, job{
			party: o.Buyer.Name,
			key:   o.Buyer.Name + ".pdf",
			build: func(link string) (*render.PDF, error) { return BuildOrder(o, g.st, link) },
		})
	}
	return g.generate(ctx, "orders", jobs)
}

// Picks generates one pick list per seller with at least one line.
func (g *Generator) Picks(ctx context.Context, picks []f2f.Pick) []Result {
	var jobs []job
	for _, p := range picks {
		if len(p.Lines) == 0 {
			continue
		}
		jobs = append(jobs, job{
			party: p.Seller.Name,
			key:   fmt.Sprintf("%s Pick List %s.pdf", p.Seller.Name, p.Date.Format(wireDate)),
			build: func(string) (*render.PDF, error) { return BuildPick(p, g.st) },
		})
	}
	return g.generate(ctx, "picks", jobs)
}

// Invoices generates one invoice per record with at least one line.
func (g *Generator) Invoices(ctx context.Context, invoices []f2f.Invoice) []Result {
	var jobs []job
	for _, inv := range invoices {
		if len(inv.Lines) == 0 {
			continue
		}
		jobs = append(jobs, job{
			party: inv.Buyer.Name,
			key: fmt.Sprintf("Invoice %s %s %s.pdf",
				inv.Buyer.Number, inv.Buyer.Name, inv.Date.Format(wireDate)),
			build: func(link string) (*render.PDF, error) { return BuildInvoice(inv, g.st, link) },
		})
	}
	return g.generate(ctx, "invoices", jobs)
}

type job struct {
	party string
	key   string
	build func(link string) (*render.PDF, error)
}

func (g *Generator) generate(ctx context.Context, kind string, jobs []job) []Result {
	log := g.log.With(
		zap.String("batch", uuid.NewString()),
		zap.String("kind", kind),
		zap.Int("documents", len(jobs)),
	)
	log.Info("generating documents")

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = g.one(ctx, j)
		}(i, j)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			log.Warn("document failed",
				zap.String("party", res.Party), zap.Error(res.Err))
			continue
		}
		log.Info("document saved",
			zap.String("party", res.Party), zap.String("key", res.Key))
	}
	return results
}

func (g *Generator) one(ctx context.Context, j job) Result {
	res := Result{Party: j.party, Key: j.key, Link: g.store.Link(j.key)}

	pdf, err := j.build(res.Link)
	if err != nil {
		res.Err = fmt.Errorf("document: build %s: %w", j.key, err)
		return res
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		res.Err = fmt.Errorf("document: render %s: %w", j.key, err)
		return res
	}
	if err := g.store.Save(ctx, j.key, &buf); err != nil {
		res.Err = err
		res.Link = ""
	}
	return res
}
