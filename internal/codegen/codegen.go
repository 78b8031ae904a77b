package codegen

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/crewcall-bot/crewcall/internal/codegen Generator

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrCodeSpaceExhausted is returned when every candidate code collided
// with an existing one. The caller reports this and creates nothing.
var ErrCodeSpaceExhausted = errors.New("unable to generate a unique code")

// codeAlphabet is the set of characters codes are drawn from. Uppercase
// letters only, so codes stay easy to read out and type.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	// DefaultLength is the default code length
	DefaultLength = 6

	// DefaultMaxAttempts is the default number of collision retries
	DefaultMaxAttempts = 10
)

// Generator produces join codes that are unique within a set of existing codes
type Generator interface {
	// Generate draws random codes until one misses input.Existing, or
	// attempts run out
	Generate(input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput contains parameters for generating a code
type GenerateInput struct {
	// Existing is the set of codes the result must not collide with
	Existing map[string]struct{}
}

// GenerateOutput contains the generated code
type GenerateOutput struct {
	// Code is the generated join code
	Code string
}

// Config for the code generator
type Config struct {
	// Length of generated codes
	Length int

	// MaxAttempts is how many collisions to tolerate before giving up
	MaxAttempts int

	// Optional seed for testing
	Seed int64
}

// rngGenerator implements Generator using a seeded PRNG
type rngGenerator struct {
	length      int
	maxAttempts int
	random      *rand.Rand
}

// New creates a new code generator
func New(cfg *Config) *rngGenerator {
	length := DefaultLength
	maxAttempts := DefaultMaxAttempts
	var seed int64

	if cfg != nil {
		if cfg.Length > 0 {
			length = cfg.Length
		}
		if cfg.MaxAttempts > 0 {
			maxAttempts = cfg.MaxAttempts
		}
		seed = cfg.Seed
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &rngGenerator{
		length:      length,
		maxAttempts: maxAttempts,
		random:      rand.New(rand.NewSource(seed)),
	}
}

// Generate draws candidate codes until one is free of collisions
func (g *rngGenerator) Generate(input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		input = &GenerateInput{}
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := g.draw()
		if _, taken := input.Existing[candidate]; !taken {
			return &GenerateOutput{Code: candidate}, nil
		}
	}

	return nil, ErrCodeSpaceExhausted
}

func (g *rngGenerator) draw() string {
	var sb strings.Builder
	sb.Grow(g.length)
	for i := 0; i < g.length; i++ {
		sb.WriteByte(codeAlphabet[g.random.Intn(len(codeAlphabet))])
	}
	return sb.String()
}
