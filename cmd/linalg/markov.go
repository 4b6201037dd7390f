// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) markovCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markov",
		Short: "Markov chains over workspace transition matrices",
	}
	cmd.AddCommand(a.stationaryCmd(), a.evolveCmd(), a.classifyCmd())

	return cmd
}

func (a *app) stationaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stationary CHAIN",
		Short: "Stationary distribution π with π·P = π",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ws.Chain(args[0])
			if err != nil {
				return err
			}
			pi, err := c.Stationary()
			if err != nil {
				return fmt.Errorf("stationary %s: %w", args[0], err)
			}
			return a.render.Vector(a.out, pi)
		},
	}
}

func (a *app) evolveCmd() *cobra.Command {
	var steps, start int
	cmd := &cobra.Command{
		Use:   "evolve CHAIN",
		Short: "Distribution after --steps transitions from state --start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ws.Chain(args[0])
			if err != nil {
				return err
			}
			dist, err := c.Point(start)
			if err != nil {
				return fmt.Errorf("evolve %s: %w", args[0], err)
			}
			log.Debug().Str("chain", args[0]).Int("steps", steps).Int("start", start).Msg("evolving")
			if dist, err = c.Evolve(dist, steps); err != nil {
				return fmt.Errorf("evolve %s: %w", args[0], err)
			}
			return a.render.Vector(a.out, dist)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of transitions")
	cmd.Flags().IntVar(&start, "start", 0, "initial state")

	return cmd
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify CHAIN",
		Short: "Report communicating classes, absorbing states, period and regularity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ws.Chain(args[0])
			if err != nil {
				return err
			}
			period, err := c.Period(0)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "states:      %d\n", c.States())
			fmt.Fprintf(a.out, "classes:     %v\n", c.Classes())
			fmt.Fprintf(a.out, "closed:      %v\n", c.ClosedClasses())
			fmt.Fprintf(a.out, "absorbing:   %v\n", c.AbsorbingStates())
			fmt.Fprintf(a.out, "irreducible: %t\n", c.IsIrreducible())
			fmt.Fprintf(a.out, "period(0):   %d\n", period)
			fmt.Fprintf(a.out, "regular:     %t\n", c.IsRegular(0))
			return nil
		},
	}
}
