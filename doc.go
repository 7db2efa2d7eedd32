// Package mcakit is a toolkit for multiple correspondence analysis (MCA) of
// categorical survey-style tables.
//
// What is inside?
//
//	A small stack that takes a table from disk or the wire to factor scores:
//		• dataset/  CSV ingestion into a labelled string Frame
//		• dummy/    one-hot (complete disjunctive) encoding of categorical columns
//		• matrix/   row-major Dense matrices, kernels, marginals and a gonum bridge
//		• svd/      dense and truncated singular value decompositions on gonum
//		• mca/      the analysis engine: Benzécri-corrected eigenvalues, row and
//		  column factor scores, contributions, cos², supplementary projection
//		• config/   YAML run configuration shared by the CLI and the server
//		• server/   gin HTTP API (POST /v1/analyze)
//		• cmd/mca   cobra command line: `mca run`, `mca serve`
//
// Quick start:
//
//	mca run --input survey.csv --index-col --cols q1,q2,q3 --n 2
//
// Library use:
//
//	m, err := mca.New(indicator, mca.WithNCols(3))
//	F, err := m.RowScores(0.9, 0)
//
// Every fallible call returns an error wrapping a package sentinel; match
// them with errors.Is.
package mcakit
