package usecase

import (
	"context"
	"errors"

	"schoolmgmt/domain"

	"golang.org/x/crypto/bcrypt"
)

// PeopleUsecase owns the user-backed profiles: students, teachers, parents
// and admins. Creation is always user + profile in one transaction.
type PeopleUsecase struct {
	users    domain.UserRepo
	students domain.StudentRepo
	teachers domain.TeacherRepo
	parents  domain.ParentRepo
	admins   domain.AdminRepo
	academic domain.AcademicRepo
}

func NewPeopleUsecase(users domain.UserRepo, students domain.StudentRepo, teachers domain.TeacherRepo, parents domain.ParentRepo, admins domain.AdminRepo, academic domain.AcademicRepo) *PeopleUsecase {
	return &PeopleUsecase{users: users, students: students, teachers: teachers, parents: parents, admins: admins, academic: academic}
}

func (pu *PeopleUsecase) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := pu.users.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Category == domain.ErrNotFound {
		return false, nil
	}
	return false, err
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (pu *PeopleUsecase) CreateStudent(ctx context.Context, req *domain.CreateStudentRequest) (*domain.Student, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	taken, err := pu.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("email %s is already registered", req.Email)
	}
	if _, err := pu.students.GetByAdmissionNo(ctx, req.AdmissionNo); err == nil {
		return nil, domain.Conflictf("admission number %s is already in use", req.AdmissionNo)
	}
	if req.ClassID != nil {
		if _, err := pu.academic.GetClassByID(ctx, *req.ClassID); err != nil {
			return nil, err
		}
	}
	if req.ParentID != nil {
		if _, err := pu.parents.GetByID(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: req.Email, Password: hashed, Role: domain.RoleStudent, IsActive: true}
	student := &domain.Student{
		AdmissionNo: req.AdmissionNo,
		Name:        req.Name,
		ClassID:     req.ClassID,
		Section:     req.Section,
		RollNo:      req.RollNo,
		DOB:         req.DOB,
		Gender:      req.Gender,
		Address:     req.Address,
		Phone:       req.Phone,
		ParentID:    req.ParentID,
		BloodGroup:  req.BloodGroup,
	}
	if err := pu.students.Create(ctx, user, student); err != nil {
		return nil, err
	}

	log.WithField("student_id", student.StudentID).Info("student created")
	return student, nil
}

func (pu *PeopleUsecase) GetAllStudents(ctx context.Context) (*[]domain.Student, error) {
	return pu.students.GetAll(ctx)
}

func (pu *PeopleUsecase) GetStudent(ctx context.Context, id int) (*domain.Student, error) {
	return pu.students.GetByID(ctx, id)
}

func (pu *PeopleUsecase) UpdateStudent(ctx context.Context, id int, upd *domain.StudentUpdate) (*domain.Student, error) {
	if upd.ClassID != nil {
		if _, err := pu.academic.GetClassByID(ctx, *upd.ClassID); err != nil {
			return nil, err
		}
	}
	if upd.ParentID != nil {
		if _, err := pu.parents.GetByID(ctx, *upd.ParentID); err != nil {
			return nil, err
		}
	}
	if err := pu.students.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return pu.students.GetByID(ctx, id)
}

func (pu *PeopleUsecase) DeleteStudent(ctx context.Context, id int) error {
	return pu.students.Delete(ctx, id)
}

func (pu *PeopleUsecase) CreateTeacher(ctx context.Context, req *domain.CreateTeacherRequest) (*domain.Teacher, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	taken, err := pu.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("email %s is already registered", req.Email)
	}
	if _, err := pu.teachers.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return nil, domain.Conflictf("employee id %s is already in use", req.EmployeeID)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: req.Email, Password: hashed, Role: domain.RoleTeacher, IsActive: true}
	teacher := &domain.Teacher{
		EmployeeID:      req.EmployeeID,
		Name:            req.Name,
		Phone:           req.Phone,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		JoinDate:        req.JoinDate,
		Address:         req.Address,
	}
	if err := pu.teachers.Create(ctx, user, teacher); err != nil {
		return nil, err
	}

	if len(req.ClassIDs) > 0 {
		if err := pu.teachers.AssignClasses(ctx, teacher.TeacherID, req.ClassIDs); err != nil {
			return nil, err
		}
	}
	if len(req.SubjectIDs) > 0 {
		if err := pu.teachers.AssignSubjects(ctx, teacher.TeacherID, req.SubjectIDs); err != nil {
			return nil, err
		}
	}

	log.WithField("teacher_id", teacher.TeacherID).Info("teacher created")
	return pu.teachers.GetByID(ctx, teacher.TeacherID)
}

func (pu *PeopleUsecase) GetAllTeachers(ctx context.Context) (*[]domain.Teacher, error) {
	return pu.teachers.GetAll(ctx)
}

func (pu *PeopleUsecase) GetTeacher(ctx context.Context, id int) (*domain.Teacher, error) {
	return pu.teachers.GetByID(ctx, id)
}

func (pu *PeopleUsecase) UpdateTeacher(ctx context.Context, id int, upd *domain.TeacherUpdate) (*domain.Teacher, error) {
	if err := pu.teachers.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return pu.teachers.GetByID(ctx, id)
}

func (pu *PeopleUsecase) DeleteTeacher(ctx context.Context, id int) error {
	return pu.teachers.Delete(ctx, id)
}

func (pu *PeopleUsecase) AssignTeacherClasses(ctx context.Context, teacherID int, classIDs []int) error {
	if classes, err := pu.academic.GetClassesByIDs(ctx, classIDs); err != nil {
		return err
	} else if len(*classes) != len(classIDs) {
		return domain.NotFoundf("one or more classes not found")
	}
	return pu.teachers.AssignClasses(ctx, teacherID, classIDs)
}

func (pu *PeopleUsecase) AssignTeacherSubjects(ctx context.Context, teacherID int, subjectIDs []int) error {
	if subjects, err := pu.academic.GetSubjectsByIDs(ctx, subjectIDs); err != nil {
		return err
	} else if len(*subjects) != len(subjectIDs) {
		return domain.NotFoundf("one or more subjects not found")
	}
	return pu.teachers.AssignSubjects(ctx, teacherID, subjectIDs)
}

func (pu *PeopleUsecase) CreateParent(ctx context.Context, req *domain.CreateParentRequest) (*domain.Parent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	taken, err := pu.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("email %s is already registered", req.Email)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: req.Email, Password: hashed, Role: domain.RoleParent, IsActive: true}
	parent := &domain.Parent{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.ContactEmail,
		Occupation: req.Occupation,
		Address:    req.Address,
		Relation:   req.Relation,
	}
	if err := pu.parents.Create(ctx, user, parent); err != nil {
		return nil, err
	}

	log.WithField("parent_id", parent.ParentID).Info("parent created")
	return parent, nil
}

func (pu *PeopleUsecase) GetAllParents(ctx context.Context) (*[]domain.Parent, error) {
	return pu.parents.GetAll(ctx)
}

func (pu *PeopleUsecase) GetParent(ctx context.Context, id int) (*domain.Parent, error) {
	return pu.parents.GetByID(ctx, id)
}

func (pu *PeopleUsecase) GetParentChildren(ctx context.Context, parentID int) (*[]domain.Student, error) {
	if _, err := pu.parents.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return pu.students.GetByParent(ctx, parentID)
}

func (pu *PeopleUsecase) UpdateParent(ctx context.Context, id int, upd *domain.ParentUpdate) (*domain.Parent, error) {
	if err := pu.parents.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return pu.parents.GetByID(ctx, id)
}

func (pu *PeopleUsecase) DeleteParent(ctx context.Context, id int) error {
	return pu.parents.Delete(ctx, id)
}

func (pu *PeopleUsecase) CreateAdmin(ctx context.Context, req *domain.CreateAdminRequest) (*domain.Admin, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	taken, err := pu.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("email %s is already registered", req.Email)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: req.Email, Password: hashed, Role: domain.RoleAdmin, IsActive: true}
	admin := &domain.Admin{Name: req.Name, Designation: req.Designation, Phone: req.Phone}
	if err := pu.admins.Create(ctx, user, admin); err != nil {
		return nil, err
	}

	log.WithField("admin_id", admin.AdminID).Info("admin created")
	return admin, nil
}

func (pu *PeopleUsecase) GetAllAdmins(ctx context.Context) (*[]domain.Admin, error) {
	return pu.admins.GetAll(ctx)
}
