package db

import (
	"context"
	"fmt"

	"github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/models"
)

// ListStudents returns all students in storage (id) order.
func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, name, roll_no, class, created_at FROM students ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	out := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.RollNo, &st.Class, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// AddStudent inserts a new student. The database assigns the id and
// creation timestamp; never pre-compute an id here.
func (s *Store) AddStudent(ctx context.Context, st models.NewStudent) error {
	_, err := s.pool.ExecContext(ctx,
		`INSERT INTO students (name, roll_no, class) VALUES (?, ?, ?)`,
		st.Name, st.RollNo, st.Class)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// DeleteStudent removes the student with the given id. Deleting an
// absent id is not an error, and remaining ids are never renumbered.
func (s *Store) DeleteStudent(ctx context.Context, id int) error {
	if _, err := s.pool.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return nil
}

// ListTeachers returns all teachers in storage (id) order.
func (s *Store) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, name, subject, class, created_at FROM teachers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	out := []models.Teacher{}
	for rows.Next() {
		var tc models.Teacher
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Subject, &tc.Class, &tc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// AddTeacher inserts a new teacher with a database-assigned id.
func (s *Store) AddTeacher(ctx context.Context, tc models.NewTeacher) error {
	_, err := s.pool.ExecContext(ctx,
		`INSERT INTO teachers (name, subject, class) VALUES (?, ?, ?)`,
		tc.Name, tc.Subject, tc.Class)
	if err != nil {
		return fmt.Errorf("insert teacher: %w", err)
	}
	return nil
}

// DeleteTeacher removes the teacher with the given id, idempotently.
func (s *Store) DeleteTeacher(ctx context.Context, id int) error {
	if _, err := s.pool.ExecContext(ctx, `DELETE FROM teachers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete teacher %d: %w", id, err)
	}
	return nil
}
