package solcast

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/contractshark/solc-typed-ast/ast"
	"github.com/contractshark/solc-typed-ast/reader"
	"github.com/contractshark/solc-typed-ast/version"
	"github.com/contractshark/solc-typed-ast/writer"
)

// ReadJSON decodes one solc output document and normalizes every source
// unit in it into a typed tree sharing a single Context.
func ReadJSON(data []byte, opts ...reader.Option) (*reader.Result, error) {
	out, err := reader.DecodeOutput(data)
	if err != nil {
		return nil, err
	}
	return reader.Read(out, opts...)
}

// ReadAllJSON reads independent compiler output documents concurrently.
// Each document gets its own Context; results line up with docs by
// index. The first failure cancels the remaining reads.
func ReadAllJSON(ctx context.Context, docs [][]byte, opts ...reader.Option) ([]*reader.Result, error) {
	results := make([]*reader.Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ReadJSON(doc, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteUnit renders a source unit as Solidity text for the target
// compiler version, using the default rule mapping and formatting.
func WriteUnit(unit *ast.SourceUnit, target version.Version) (string, error) {
	return writer.Write(unit, target, writer.DefaultPolicy())
}
