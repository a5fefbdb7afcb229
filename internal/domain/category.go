package domain

import "fmt"

// Category is one of the fixed content categories.
type Category string

const (
	CategoryAI       Category = "AI"
	CategoryTech     Category = "Tech"
	CategoryCrypto   Category = "Crypto"
	CategoryWeb3     Category = "Web3"
	CategorySecurity Category = "Security"
	CategoryPrivacy  Category = "Privacy"
)

// Categories is the registry's category table, in index order.
// The registry stores the index, so entries may only ever be appended.
var Categories = []Category{
	CategoryAI,
	CategoryTech,
	CategoryCrypto,
	CategoryWeb3,
	CategorySecurity,
	CategoryPrivacy,
}

var categoryIndexes = func() map[Category]uint8 {
	m := make(map[Category]uint8, len(Categories))
	for i, c := range Categories {
		m[c] = uint8(i) //nolint:gosec // table is tiny
	}
	return m
}()

// CategoryFromIndex maps a registry category index back to its Category.
func CategoryFromIndex(index uint64) (Category, error) {
	if index >= uint64(len(Categories)) {
		return "", fmt.Errorf("%w: index [%d]", ErrUnknownCategory, index)
	}
	return Categories[index], nil
}

// Index returns the registry index of the category.
func (c Category) Index() (uint8, error) {
	idx, ok := categoryIndexes[c]
	if !ok {
		return 0, fmt.Errorf("%w: [%s]", ErrUnknownCategory, string(c))
	}
	return idx, nil
}

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, err := c.Index(); err != nil {
		return "", err
	}
	return c, nil
}
