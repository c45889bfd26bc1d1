// Package result assembles the terminal "optimization_results" record (C7):
// a rounded snapshot of a Placement's metrics plus the run's iteration count
// and which engine produced it, field names taken verbatim from the source
// scripts' output dict (example_SA/03_simulatedAnnealing.py,
// example_SP/03_simulatedAnnealing.py).
package result
