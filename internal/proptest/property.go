package proptest

// A Property is one verifiable guarantee of the derivation pipeline.
type Property string

const (
	// BlockFormat: the formatted password is four four-character blocks
	// joined with single spaces, and flattens to the compact form.
	BlockFormat Property = "block-format"
	// OneUppercase: exactly one character is uppercase, and it is one of
	// the letters a hex digest can produce.
	OneUppercase Property = "one-uppercase"
	// OneSymbol: exactly one character comes from the symbol alphabet.
	OneSymbol Property = "one-symbol"
	// HexBody: every other character is a lowercase hex digit.
	HexBody Property = "hex-body"
	// Deterministic: equal seeds and equal (trimmed) word lists derive
	// bit-identical passwords.
	Deterministic Property = "deterministic"
	// CleanFailure: when derivation fails, it fails with a documented
	// error instead of a malformed password.
	CleanFailure Property = "clean-failure"
)
