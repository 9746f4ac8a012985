package ports

// Hasher defines the interface for fingerprinting source trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeVerificationCode hashes every file below root in a deterministic order.
	// It returns the code and the number of files that contributed to it.
	ComputeVerificationCode(root string) (code string, fileCount int, err error)
}
