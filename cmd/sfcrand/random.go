package main

import (
	"fmt"

	"github.com/lox/sfcrand/sfc"
)

// RandomCmd prints one random word in hex. With no seed argument the
// generator is seeded from OS entropy.
type RandomCmd struct {
	Rng  string  `kong:"default='sfc64',enum='sfc32,sfc64',help='Generator to use (sfc32 or sfc64)'"`
	Seed *uint64 `kong:"arg,optional,help='Seed to use (omit to seed from OS entropy)'"`
}

func (c *RandomCmd) Run() error {
	switch c.Rng {
	case "sfc32":
		g, err := c.sfc32()
		if err != nil {
			return err
		}
		fmt.Printf("%#010x\n", g.Uint32())
	default:
		g, err := c.sfc64()
		if err != nil {
			return err
		}
		fmt.Printf("%#018x\n", g.Uint64())
	}
	return nil
}

func (c *RandomCmd) sfc32() (*sfc.Sfc32, error) {
	if c.Seed != nil {
		return sfc.New32Seed(*c.Seed), nil
	}
	return sfc.New32Random(nil)
}

func (c *RandomCmd) sfc64() (*sfc.Sfc64, error) {
	if c.Seed != nil {
		return sfc.New64Seed(*c.Seed), nil
	}
	return sfc.New64Random(nil)
}
