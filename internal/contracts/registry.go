package contracts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownRole  = errors.New("unknown contract role")
	ErrUnknownEvent = errors.New("unknown contract event")
)

// Role names a contract interface shared by every workflow.
type Role string

const (
	RoleIPAssetRegistry Role = "ip_asset_registry"
	RoleLicensingModule Role = "licensing_module"
	RoleLicenseTemplate Role = "license_template"
	RoleERC721          Role = "erc721"
)

//go:embed abi/*.json
var abiFiles embed.FS

var roleFiles = map[Role]string{
	RoleIPAssetRegistry: "abi/ip_asset_registry.json",
	RoleLicensingModule: "abi/licensing_module.json",
	RoleLicenseTemplate: "abi/license_template.json",
	RoleERC721:          "abi/erc721.json",
}

// Registry holds the parsed contract interfaces, keyed by role.
type Registry struct {
	abis map[Role]abi.ABI
}

// NewRegistry parses the embedded interface descriptors once.
func NewRegistry() (*Registry, error) {
	abis := make(map[Role]abi.ABI, len(roleFiles))
	for role, file := range roleFiles {
		raw, err := abiFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read abi %q: %w", file, err)
		}

		parsed, err := abi.JSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse abi %q: %w", file, err)
		}
		abis[role] = parsed
	}

	return &Registry{
		abis: abis,
	}, nil
}

func (r *Registry) ABI(role Role) (abi.ABI, error) {
	parsed, ok := r.abis[role]
	if !ok {
		return abi.ABI{}, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	return parsed, nil
}

// Pack encodes a call to method on the contract playing role.
func (r *Registry) Pack(role Role, method string, args ...any) ([]byte, error) {
	parsed, err := r.ABI(role)
	if err != nil {
		return nil, err
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s.%s: %w", role, method, err)
	}
	return data, nil
}

// Unpack decodes the return values of method.
func (r *Registry) Unpack(role Role, method string, data []byte) ([]any, error) {
	parsed, err := r.ABI(role)
	if err != nil {
		return nil, err
	}

	values, err := parsed.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s.%s: %w", role, method, err)
	}
	return values, nil
}

// EventID returns the topic0 of the named event.
func (r *Registry) EventID(role Role, event string) (common.Hash, error) {
	parsed, err := r.ABI(role)
	if err != nil {
		return common.Hash{}, err
	}

	ev, ok := parsed.Events[event]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w: %s.%s", ErrUnknownEvent, role, event)
	}
	return ev.ID, nil
}
