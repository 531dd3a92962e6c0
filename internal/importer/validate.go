package importer

import (
	"fmt"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Version != 0 && schema.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported schema version %d", schema.Version))
	}

	workerRefs := make(map[string]bool)
	errs = append(errs, validateWorkers(schema.Workers, workerRefs)...)

	projectRefs := make(map[string]bool)
	errs = append(errs, validateProjects(schema.Projects, workerRefs, projectRefs)...)

	errs = append(errs, validateTasks(schema.Tasks, projectRefs, workerRefs)...)

	return errs
}

func validateWorkers(workers []WorkerImport, refs map[string]bool) []error {
	var errs []error
	for i, w := range workers {
		field := fmt.Sprintf("workers[%d]", i)
		if w.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", field))
		} else if refs[w.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", field, w.Ref))
		} else {
			refs[w.Ref] = true
		}
		if w.DailyCapacity < 0 {
			errs = append(errs, fmt.Errorf("%s.daily_capacity must not be negative", field))
		}
		for _, d := range w.WorkingDays {
			if d < 1 || d > 7 {
				errs = append(errs, fmt.Errorf("%s.working_days: invalid weekday %d (expected 1-7)", field, d))
			}
		}
	}
	return errs
}

func validateProjects(projects []ProjectImport, workerRefs, refs map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		field := fmt.Sprintf("projects[%d]", i)
		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", field))
		} else if refs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", field, p.Ref))
		} else {
			refs[p.Ref] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		errs = append(errs, validateOptionalDate(field+".start_date", p.StartDate)...)
		errs = append(errs, validateOptionalDate(field+".end_date", p.EndDate)...)
		for _, ref := range p.Workers {
			if !workerRefs[ref] {
				errs = append(errs, fmt.Errorf("%s.workers: unknown worker ref %q", field, ref))
			}
		}
	}
	return errs
}

func validateTasks(tasks []TaskImport, projectRefs, workerRefs map[string]bool) []error {
	var errs []error
	taskRefs := make(map[string]bool)
	for i, t := range tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", field))
		} else if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", field, t.Ref))
		} else {
			taskRefs[t.Ref] = true
		}
		if t.Project == "" {
			errs = append(errs, fmt.Errorf("%s.project is required", field))
		} else if !projectRefs[t.Project] {
			errs = append(errs, fmt.Errorf("%s.project: unknown project ref %q", field, t.Project))
		}
		if t.StoryPoints < 0 {
			errs = append(errs, fmt.Errorf("%s.story_points must not be negative", field))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", field, t.Status))
		}
		if t.AssignedTo != nil && !workerRefs[*t.AssignedTo] {
			errs = append(errs, fmt.Errorf("%s.assigned_to: unknown worker ref %q", field, *t.AssignedTo))
		}
		errs = append(errs, validateOptionalDateTime(field+".created_at", t.CreatedAt)...)
		for j, m := range t.Movements {
			mfield := fmt.Sprintf("%s.movements[%d]", field, j)
			if m.From != "" && !domain.ValidTaskStatuses[m.From] {
				errs = append(errs, fmt.Errorf("%s.from: invalid status %q", mfield, m.From))
			}
			if !domain.ValidTaskStatuses[m.To] {
				errs = append(errs, fmt.Errorf("%s.to: invalid status %q", mfield, m.To))
			}
			if _, err := time.Parse(time.RFC3339, m.At); err != nil {
				errs = append(errs, fmt.Errorf("%s.at: invalid timestamp %q (expected RFC3339)", mfield, m.At))
			}
		}
		// Dangling depends_on refs are allowed: the scheduler reports them
		// as warnings instead of refusing the snapshot.
	}
	return errs
}

func validateOptionalDate(field string, v *string) []error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *v); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *v)}
	}
	return nil
}

func validateOptionalDateTime(field string, v *string) []error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, *v); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected RFC3339)", field, *v)}
	}
	return nil
}
