// Package store persists sweep results in a SQLite database: one row per
// run, one per solved case with its band powers, and one per failed case.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/monitoring"
	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

// Store is a results database.
type Store struct {
	db *sql.DB
}

// Run is a stored run header.
type Run struct {
	ID         string
	Name       string
	Mesh       string
	Elements   int
	SoundSpeed float64
	Density    float64
	Cases      int
	Failures   int
}

// Case is a stored per-case summary.
type Case struct {
	Index        int
	Frequency    float64
	Wavenumber   float64
	Policy       string
	Power        float64
	BaffledPower float64
	Ratio        float64
	Impedance    complex128
	Bands        map[string]float64
}

// Open opens (creating if needed) the database at path and migrates it to
// the latest schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps PRAGMAs and :memory: databases consistent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}
	s := &Store{db: db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Report implements report.Reporter by saving the run.
func (s *Store) Report(res *sweep.Result) error {
	return s.SaveRun(res)
}

// SaveRun stores a run and all its cases in one transaction.
func (s *Store) SaveRun(res *sweep.Result) (err error) {
	if res == nil {
		return errors.New("store: no result")
	}
	meshName, elements := "", 0
	if res.Mesh != nil {
		meshName, elements = res.Mesh.Name, res.Mesh.NumElements()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`INSERT INTO runs (run_id, name, mesh, elements, sound_speed, density) VALUES (?, ?, ?, ?, ?, ?)`,
		res.RunID, res.Name, meshName, elements, res.Medium.SoundSpeed, res.Medium.Density); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", res.RunID, err)
	}

	for _, c := range res.Cases {
		sum := c.Summary
		if _, err = tx.Exec(`INSERT INTO cases (run_id, case_index, frequency, wavenumber, policy, power, baffled_power, ratio, impedance_re, impedance_im)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			res.RunID, c.Index, c.Case.Frequency, c.Case.Wavenumber, string(sum.Policy), sum.Power, sum.BaffledPower, sum.RadiationRatio,
			real(sum.MechanicalImpedance), imag(sum.MechanicalImpedance)); err != nil {
			return fmt.Errorf("failed to insert case %d: %w", c.Index+1, err)
		}
		for _, b := range sum.Bands {
			if _, err = tx.Exec(`INSERT INTO case_bands (run_id, case_index, name, first_element, last_element, power) VALUES (?, ?, ?, ?, ?, ?)`,
				res.RunID, c.Index, b.Name, b.From, b.To, b.Power); err != nil {
				return fmt.Errorf("failed to insert band %q of case %d: %w", b.Name, c.Index+1, err)
			}
		}
	}

	for _, f := range res.Failures {
		if err = saveFailure(tx, res.RunID, f); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	monitoring.Logf("store: saved run %s (%d cases, %d failures)", res.RunID, len(res.Cases), len(res.Failures))
	return nil
}

func saveFailure(tx *sql.Tx, runID string, f *bemerr.CaseError) error {
	if _, err := tx.Exec(`INSERT INTO failures (run_id, case_index, frequency, message) VALUES (?, ?, ?, ?)`,
		runID, f.Case, f.Frequency, f.Error()); err != nil {
		return fmt.Errorf("failed to insert failure of case %d: %w", f.Case+1, err)
	}
	return nil
}

// Runs lists stored runs, oldest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT r.run_id, r.name, r.mesh, r.elements, r.sound_speed, r.density,
			(SELECT COUNT(*) FROM cases c WHERE c.run_id = r.run_id),
			(SELECT COUNT(*) FROM failures f WHERE f.run_id = r.run_id)
		FROM runs r
		ORDER BY r.created_at, r.rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Name, &r.Mesh, &r.Elements, &r.SoundSpeed, &r.Density, &r.Cases, &r.Failures); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Cases returns the stored cases of a run in ascending frequency order.
func (s *Store) Cases(runID string) ([]Case, error) {
	rows, err := s.db.Query(`
		SELECT case_index, frequency, wavenumber, policy, power, baffled_power, ratio, impedance_re, impedance_im
		FROM cases WHERE run_id = ?
		ORDER BY frequency, case_index`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Case
	byIndex := map[int]int{}
	for rows.Next() {
		var c Case
		var re, im float64
		if err := rows.Scan(&c.Index, &c.Frequency, &c.Wavenumber, &c.Policy, &c.Power, &c.BaffledPower, &c.Ratio, &re, &im); err != nil {
			return nil, err
		}
		c.Impedance = complex(re, im)
		byIndex[c.Index] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	bands, err := s.db.Query(`SELECT case_index, name, power FROM case_bands WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer bands.Close()
	for bands.Next() {
		var idx int
		var name string
		var p float64
		if err := bands.Scan(&idx, &name, &p); err != nil {
			return nil, err
		}
		if i, ok := byIndex[idx]; ok {
			if out[i].Bands == nil {
				out[i].Bands = map[string]float64{}
			}
			out[i].Bands[name] = p
		}
	}
	return out, bands.Err()
}

// Failures returns the stored error messages of a run keyed by 0-based
// case index.
func (s *Store) Failures(runID string) (map[int]string, error) {
	rows, err := s.db.Query(`SELECT case_index, message FROM failures WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[int]string{}
	for rows.Next() {
		var idx int
		var msg string
		if err := rows.Scan(&idx, &msg); err != nil {
			return nil, err
		}
		out[idx] = msg
	}
	return out, rows.Err()
}

// DeleteRun removes a run and everything stored with it.
func (s *Store) DeleteRun(runID string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("store: run %s not found", runID)
	}
	return nil
}
