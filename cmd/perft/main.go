// Command perft enumerates legal-move-count leaf nodes from a FEN position,
// the reference tool used to validate the move generator against known
// counts at fixed depths.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/corvid-chess/chesscore/internal/board"
	"github.com/corvid-chess/chesscore/internal/cache"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtree counts")
	cacheDir := flag.String("cache", "", "directory for the node-count cache (disabled if empty; use \"default\" for the platform default)")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	var c *cache.Cache
	if *cacheDir != "" {
		dir := *cacheDir
		if dir == "default" {
			dir, err = cache.DefaultDir()
			if err != nil {
				log.Fatalf("perft: resolving default cache dir: %v", err)
			}
		}
		c, err = cache.Open(dir)
		if err != nil {
			log.Fatalf("perft: opening cache: %v", err)
		}
		defer c.Close()
	}

	if *divide {
		total := dividePerft(pos, *depth, c)
		fmt.Printf("\nTotal: %d\n", total)
		return
	}

	nodes := perft(pos, *depth, c)
	fmt.Printf("perft(%d) from %q = %d\n", *depth, *fen, nodes)
}

// perft counts leaf nodes at depth, optionally memoizing subtree counts in
// c keyed by (position hash, depth).
func perft(pos *board.Position, depth int, c *cache.Cache) int64 {
	if depth == 0 {
		return 1
	}

	if c != nil {
		if nodes, ok := c.Get(pos.Hash, depth); ok {
			return nodes
		}
	}

	moves := pos.GenerateLegalMoves()
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		nodes += applyAndPerft(pos, moves.Get(i), depth, c)
	}

	if c != nil {
		if err := c.Put(pos.Hash, depth, nodes); err != nil {
			log.Printf("perft: cache put: %v", err)
		}
	}

	return nodes
}

// applyAndPerft applies m and recurses, branching over all four promotion
// resolutions when m leaves a choice pending (§4.6 two-stage promotion).
func applyAndPerft(pos *board.Position, m board.Move, depth int, c *cache.Cache) int64 {
	outcome, _ := m.Apply(pos)
	if next, ok := outcome.Position(); ok {
		return perft(next, depth-1, c)
	}

	resolver, _ := outcome.Resolver()
	var nodes int64
	nodes += perft(resolver.ResolveKnight(), depth-1, c)
	nodes += perft(resolver.ResolveBishop(), depth-1, c)
	nodes += perft(resolver.ResolveRook(), depth-1, c)
	nodes += perft(resolver.ResolveQueen(), depth-1, c)
	return nodes
}

func dividePerft(pos *board.Position, depth int, c *cache.Cache) int64 {
	if depth < 1 {
		return perft(pos, depth, c)
	}

	moves := pos.GenerateLegalMoves()
	var total int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		sub := applyAndPerft(pos, m, depth, c)
		fmt.Printf("%s: %d\n", m, sub)
		total += sub
	}
	return total
}
