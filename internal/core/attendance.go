package core

import "fieldcrm/pkg/domain"

// AttendanceLog is the repository for attendance records. The collection is
// append/update-only: attendance is treated as an audit log and has no
// delete path.
type AttendanceLog struct {
	*deps
}

// List returns attendance records after the filter, sort, paginate pipeline.
func (r *AttendanceLog) List(filter *domain.Filter, sort *domain.Sort, page *domain.Page) []domain.Attendance {
	defer r.observe("attendance.list", r.now(), nil)
	records := loadAll[domain.Attendance](r.deps, domain.CollectionAttendance)
	return domain.Apply(records, filter, sort, page)
}

// Get returns the attendance record with the given identifier.
func (r *AttendanceLog) Get(id string) (domain.Attendance, bool) {
	for _, a := range loadAll[domain.Attendance](r.deps, domain.CollectionAttendance) {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Attendance{}, false
}

// GetByDate returns the record for one representative-day, if any.
func (r *AttendanceLog) GetByDate(date, representativeID string) (domain.Attendance, bool) {
	for _, a := range loadAll[domain.Attendance](r.deps, domain.CollectionAttendance) {
		if a.Date == date && a.RepresentativeID == representativeID {
			return a, true
		}
	}
	return domain.Attendance{}, false
}

// Create stores a new attendance record. The one-record-per-day invariant is
// enforced here: a second record for the same (date, representative) pair is
// rejected in the same read-modify-write pass that would store it.
func (r *AttendanceLog) Create(a domain.Attendance) (domain.Attendance, error) {
	start := r.now()
	records := loadAll[domain.Attendance](r.deps, domain.CollectionAttendance)
	for _, existing := range records {
		if existing.Date == a.Date && existing.RepresentativeID == a.RepresentativeID {
			err := domain.ErrDuplicateAttendance{Date: a.Date, RepresentativeID: a.RepresentativeID}
			r.observe("attendance.create", start, err)
			return domain.Attendance{}, err
		}
	}

	a.ID = r.newID()
	a.CreatedAt = start
	a.UpdatedAt = start
	records = append(records, a)
	saveAll(r.deps, domain.CollectionAttendance, records)
	r.observe("attendance.create", start, nil)
	return a, nil
}

// Update merges the patch into the stored record and refreshes the update
// timestamp.
func (r *AttendanceLog) Update(id string, patch domain.AttendancePatch) (domain.Attendance, error) {
	start := r.now()
	records := loadAll[domain.Attendance](r.deps, domain.CollectionAttendance)
	for i := range records {
		if records[i].ID != id {
			continue
		}
		patch.Apply(&records[i])
		records[i].UpdatedAt = start
		saveAll(r.deps, domain.CollectionAttendance, records)
		r.observe("attendance.update", start, nil)
		return records[i], nil
	}
	err := domain.ErrNotFound{Collection: domain.CollectionAttendance, ID: id}
	r.observe("attendance.update", start, err)
	return domain.Attendance{}, err
}
