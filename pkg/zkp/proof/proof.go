/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proof

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned for proof documents that cannot be used.
var ErrMalformed = errors.New("malformed proof")

// G1 is an affine point encoded as two field element strings.
type G1 [2]string

// G2 is an affine point over the quadratic extension, encoded as two coordinate pairs.
type G2 [2][2]string

// Artifact is a Groth16 proof with its public inputs, as written by the proving toolchain.
type Artifact struct {
	A      G1       `json:"a"`
	B      G2       `json:"b"`
	C      G1       `json:"c"`
	Inputs []string `json:"inputs"`
}

// Parse reads the toolchain proof document:
//
//	{"proof": {"a": [x, y], "b": [[x0, x1], [y0, y1]], "c": [x, y]}, "inputs": [...]}
func Parse(raw []byte) (*Artifact, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	doc := gjson.ParseBytes(raw)

	a, err := parseG1(doc.Get("proof.a"), "a")
	if err != nil {
		return nil, err
	}

	b, err := parseG2(doc.Get("proof.b"))
	if err != nil {
		return nil, err
	}

	c, err := parseG1(doc.Get("proof.c"), "c")
	if err != nil {
		return nil, err
	}

	inputs := doc.Get("inputs")
	if !inputs.IsArray() {
		return nil, fmt.Errorf("%w: inputs must be an array", ErrMalformed)
	}

	art := &Artifact{A: a, B: b, C: c}

	for _, in := range inputs.Array() {
		if in.Type != gjson.String {
			return nil, fmt.Errorf("%w: inputs must be strings", ErrMalformed)
		}

		art.Inputs = append(art.Inputs, in.Str)
	}

	return art, nil
}

func parseG1(v gjson.Result, name string) (G1, error) {
	var p G1

	arr := v.Array()
	if !v.IsArray() || len(arr) != 2 {
		return p, fmt.Errorf("%w: proof.%s must hold two coordinates", ErrMalformed, name)
	}

	for i, e := range arr {
		if e.Type != gjson.String {
			return p, fmt.Errorf("%w: proof.%s[%d] must be a string", ErrMalformed, name, i)
		}

		p[i] = e.Str
	}

	return p, nil
}

func parseG2(v gjson.Result) (G2, error) {
	var p G2

	arr := v.Array()
	if !v.IsArray() || len(arr) != 2 {
		return p, fmt.Errorf("%w: proof.b must hold two coordinate pairs", ErrMalformed)
	}

	for i, pair := range arr {
		g1, err := parseG1(pair, fmt.Sprintf("b[%d]", i))
		if err != nil {
			return p, err
		}

		p[i] = g1
	}

	return p, nil
}

// Validate checks that a and c are BN254 G1 points, b is a G2 point, and every public
// input is a canonical scalar field element.
func (a *Artifact) Validate() error {
	if err := checkG1(a.A, "a"); err != nil {
		return err
	}

	if err := checkG2(a.B); err != nil {
		return err
	}

	if err := checkG1(a.C, "c"); err != nil {
		return err
	}

	for i, in := range a.Inputs {
		v, err := parseInt(in)
		if err != nil {
			return fmt.Errorf("%w: inputs[%d]: %w", ErrMalformed, i, err)
		}

		if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
			return fmt.Errorf("%w: inputs[%d] is not a scalar field element", ErrMalformed, i)
		}
	}

	return nil
}

// OutputCode returns the circuit output, which is the last public input.
func (a *Artifact) OutputCode() (int64, error) {
	if len(a.Inputs) == 0 {
		return 0, fmt.Errorf("%w: no public inputs", ErrMalformed)
	}

	v, err := parseInt(a.Inputs[len(a.Inputs)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: output code: %w", ErrMalformed, err)
	}

	if !v.IsInt64() {
		return 0, fmt.Errorf("%w: output code %s out of range", ErrMalformed, v)
	}

	return v.Int64(), nil
}

func checkG1(p G1, name string) error {
	var pt bn254.G1Affine

	if err := setFp(&pt.X, p[0]); err != nil {
		return fmt.Errorf("%w: proof.%s: %w", ErrMalformed, name, err)
	}

	if err := setFp(&pt.Y, p[1]); err != nil {
		return fmt.Errorf("%w: proof.%s: %w", ErrMalformed, name, err)
	}

	if !pt.IsOnCurve() {
		return fmt.Errorf("%w: proof.%s is not on the curve", ErrMalformed, name)
	}

	return nil
}

// checkG2 accepts both limb orders since exporters differ on which one comes first.
func checkG2(p G2) error {
	for _, swap := range []bool{false, true} {
		var pt bn254.G2Affine

		lo, hi := 0, 1
		if swap {
			lo, hi = 1, 0
		}

		if err := setFp(&pt.X.A0, p[0][lo]); err != nil {
			return fmt.Errorf("%w: proof.b: %w", ErrMalformed, err)
		}

		if err := setFp(&pt.X.A1, p[0][hi]); err != nil {
			return fmt.Errorf("%w: proof.b: %w", ErrMalformed, err)
		}

		if err := setFp(&pt.Y.A0, p[1][lo]); err != nil {
			return fmt.Errorf("%w: proof.b: %w", ErrMalformed, err)
		}

		if err := setFp(&pt.Y.A1, p[1][hi]); err != nil {
			return fmt.Errorf("%w: proof.b: %w", ErrMalformed, err)
		}

		if pt.IsOnCurve() {
			return nil
		}
	}

	return fmt.Errorf("%w: proof.b is not on the curve", ErrMalformed)
}

func setFp(e *fp.Element, s string) error {
	v, err := parseInt(s)
	if err != nil {
		return err
	}

	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return fmt.Errorf("%s is not a base field element", s)
	}

	e.SetBigInt(v)

	return nil
}

// parseInt accepts 0x-prefixed hex or decimal.
func parseInt(s string) (*big.Int, error) {
	v := new(big.Int)

	var ok bool

	if h, found := strings.CutPrefix(strings.ToLower(s), "0x"); found {
		_, ok = v.SetString(h, 16)
	} else {
		_, ok = v.SetString(s, 10)
	}

	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}

	return v, nil
}
