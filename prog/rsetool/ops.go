package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/openrpki/registry/address"
	"github.com/openrpki/registry/common"
	"github.com/openrpki/registry/resource"
)

var unionCmd = &cobra.Command{
	Use:   "union SET SET",
	Short: "Coverage of either set, overlapping and touching ranges coalesced",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary("union"),
}

var intersectCmd = &cobra.Command{
	Use:   "intersect SET SET",
	Short: "Coverage common to both sets",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary("intersect"),
}

var diffCmd = &cobra.Command{
	Use:   "diff SET SET",
	Short: "Coverage of the first set not covered by the second",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary("diff"),
}

var symdiffCmd = &cobra.Command{
	Use:   "symdiff SET SET",
	Short: "Coverage in exactly one of the two sets",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary("symdiff"),
}

var commCmd = &cobra.Command{
	Use:   "comm SET SET",
	Short: "Three-way partition: only in the first, only in the second, in both",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyA, onlyB, both, err := comm(args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOut {
			return emitJSON(map[string]string{
				"only_left":  onlyA,
				"only_right": onlyB,
				"both":       both,
			})
		}
		fmt.Printf("only left:  %s\n", onlyA)
		fmt.Printf("only right: %s\n", onlyB)
		fmt.Printf("both:       %s\n", both)
		return nil
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains SET ITEM",
	Short: "Whether the set covers a single value or range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := contains(args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOut {
			return emitJSON(map[string]bool{"contains": ok})
		}
		fmt.Println(ok)
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize SET",
	Short: "Parse a set and re-serialize it with touching ranges coalesced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := binaryOp("union", args[0], "")
		if err != nil {
			return err
		}
		return emit(out)
	},
}

func init() {
	rootCmd.AddCommand(unionCmd, intersectCmd, diffCmd, symdiffCmd, commCmd, containsCmd, normalizeCmd)
}

func runBinary(op string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out, err := binaryOp(op, args[0], args[1])
		if err != nil {
			return err
		}
		return emit(out)
	}
}

func binaryOp(op, a, b string) (string, error) {
	switch family {
	case "as":
		return applyBinary(op, resource.ParseASSet, a, b)
	case "ipv4":
		return applyBinary(op, resource.ParseV4Set, a, b)
	case "ipv6":
		return applyBinary(op, resource.ParseV6Set, a, b)
	}
	return "", errors.Errorf("unknown resource family %q", family)
}

func applyBinary[T resource.Value[T]](op string, parse func(string) (resource.Set[T], error), a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	common.Debug.Printf("%s: left operand %d ranges, right operand %d ranges", op, len(x), len(y))
	var out resource.Set[T]
	switch op {
	case "union":
		out = x.Union(y)
	case "intersect":
		out = x.Intersection(y)
	case "diff":
		out = x.Difference(y)
	case "symdiff":
		out = x.SymmetricDifference(y)
	}
	return out.String(), nil
}

func comm(a, b string) (onlyA, onlyB, both string, err error) {
	switch family {
	case "as":
		return applyComm(resource.ParseASSet, a, b)
	case "ipv4":
		return applyComm(resource.ParseV4Set, a, b)
	case "ipv6":
		return applyComm(resource.ParseV6Set, a, b)
	}
	return "", "", "", errors.Errorf("unknown resource family %q", family)
}

func applyComm[T resource.Value[T]](parse func(string) (resource.Set[T], error), a, b string) (string, string, string, error) {
	x, err := parse(a)
	if err != nil {
		return "", "", "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", "", "", err
	}
	onlyA, onlyB, both := x.Comm(y)
	return onlyA.String(), onlyB.String(), both.String(), nil
}

func contains(set, item string) (bool, error) {
	switch family {
	case "as":
		s, err := resource.ParseASSet(set)
		if err != nil {
			return false, err
		}
		r, err := resource.ParseASRange(item)
		if err != nil {
			return false, err
		}
		return s.Contains(r), nil
	case "ipv4":
		s, err := resource.ParseV4Set(set)
		if err != nil {
			return false, err
		}
		if a, err := address.ParseV4(item); err == nil {
			return s.ContainsValue(a), nil
		}
		r, err := resource.ParseV4Range(item)
		if err != nil {
			return false, err
		}
		return s.Contains(r), nil
	case "ipv6":
		s, err := resource.ParseV6Set(set)
		if err != nil {
			return false, err
		}
		if a, err := address.ParseV6(item); err == nil {
			return s.ContainsValue(a), nil
		}
		r, err := resource.ParseV6Range(item)
		if err != nil {
			return false, err
		}
		return s.Contains(r), nil
	}
	return false, errors.Errorf("unknown resource family %q", family)
}

func emit(result string) error {
	if jsonOut {
		return emitJSON(map[string]string{"result": result})
	}
	fmt.Println(result)
	return nil
}

func emitJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(v)
}
