// Package testvectors loads and compares the CSV test-result files spec.md
// §6 defines for validating a calculation against the PEER benchmark suite:
// one header line followed by one row per site, each row giving that site's
// Poisson probabilities of exceedance for IMT = PGA at the model's declared
// x-axis levels.
package testvectors
