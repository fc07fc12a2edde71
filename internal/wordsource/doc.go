// Package wordsource resolves the candidate word list for a puzzle batch.
// A batch's words come from its literal list, from a Gemini-generated
// themed list, or from both; sources are resolved once at load time so
// generation itself never touches the network.
package wordsource
