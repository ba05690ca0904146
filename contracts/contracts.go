/*
Package contracts provides access to compiled settlement contracts.

Contracts are compiled by `make build` into <name>/contract.nef and
<name>/manifest.json files of this directory, Read loads them from any
file system with the same layout.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	StandardDir     = "standard"
	SanctionDir     = "sanction"
	GodModeDir      = "godmode"
	BondingCurveDir = "bondingcurve"
	EscrowDir       = "escrow"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract stored in the current package.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// Escrow goes last since it works with already deployed tokens.
	settlementContracts = []string{
		StandardDir,
		SanctionDir,
		GodModeDir,
		BondingCurveDir,
		EscrowDir,
	}
)

// Read returns the set of settlement contracts stored in fsys. They're
// returned in the order they're supposed to be deployed: Standard, Sanction,
// GodMode, BondingCurve and Escrow.
func Read(fsys fs.FS) ([]Contract, error) {
	return read(fsys, settlementContracts)
}

// read same as Read but allows to override the list of directories.
func read(fsys fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(fsys, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are always slash-separated, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
