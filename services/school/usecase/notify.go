package usecase

import (
	"context"

	"schoolmgmt/domain"
)

// NotifyUsecase sends bulk email. Dispatch is fire-and-forget: the request
// returns once the goroutine is started and delivery failures are only
// logged. A nil mailer means SMTP is not configured.
type NotifyUsecase struct {
	mailer   domain.Mailer
	users    domain.UserRepo
	students domain.StudentRepo
	teachers domain.TeacherRepo
	parents  domain.ParentRepo
	fees     domain.FeeRepo
}

func NewNotifyUsecase(mailer domain.Mailer, users domain.UserRepo, students domain.StudentRepo, teachers domain.TeacherRepo, parents domain.ParentRepo, fees domain.FeeRepo) *NotifyUsecase {
	return &NotifyUsecase{mailer: mailer, users: users, students: students, teachers: teachers, parents: parents, fees: fees}
}

// Broadcast enqueues an email to a user group: all, students, teachers or
// parents. It returns the number of recipients dispatched.
func (nu *NotifyUsecase) Broadcast(ctx context.Context, group, subject, body string) (int, error) {
	if nu.mailer == nil {
		return 0, domain.Upstreamf("mail transport is not configured")
	}
	if subject == "" || body == "" {
		return 0, domain.Validationf("subject and body are required")
	}

	userIDs, err := nu.groupUserIDs(ctx, group)
	if err != nil {
		return 0, err
	}
	recipients := nu.activeEmails(ctx, userIDs)

	nu.dispatch(recipients, subject, body)
	return len(recipients), nil
}

// FeeReminder emails the parents of every student carrying a pending or
// overdue fee.
func (nu *NotifyUsecase) FeeReminder(ctx context.Context) (int, error) {
	if nu.mailer == nil {
		return 0, domain.Upstreamf("mail transport is not configured")
	}

	fees, err := nu.fees.GetByStatuses(ctx, []string{domain.FeePending, domain.FeeOverdue})
	if err != nil {
		return 0, err
	}

	studentIDs := make(map[int]bool)
	for _, f := range *fees {
		studentIDs[f.StudentID] = true
	}

	parentIDs := make(map[int]bool)
	for id := range studentIDs {
		s, err := nu.students.GetByID(ctx, id)
		if err != nil {
			continue
		}
		if s.ParentID != nil {
			parentIDs[*s.ParentID] = true
		}
	}

	var userIDs []int
	for id := range parentIDs {
		p, err := nu.parents.GetByID(ctx, id)
		if err != nil {
			continue
		}
		userIDs = append(userIDs, p.UserID)
	}
	recipients := nu.activeEmails(ctx, userIDs)

	body := "One or more school fees for your child are pending or overdue. Please log in to review and pay."
	nu.dispatch(recipients, "Fee payment reminder", body)
	return len(recipients), nil
}

func (nu *NotifyUsecase) dispatch(recipients []string, subject, body string) {
	go func() {
		for _, to := range recipients {
			if err := nu.mailer.Send(to, subject, body); err != nil {
				log.WithField("to", to).WithError(err).Error("email delivery failed")
			}
		}
		log.WithField("count", len(recipients)).Info("email batch dispatched")
	}()
}

func (nu *NotifyUsecase) groupUserIDs(ctx context.Context, group string) ([]int, error) {
	var userIDs []int

	addStudents := func() error {
		students, err := nu.students.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, s := range *students {
			userIDs = append(userIDs, s.UserID)
		}
		return nil
	}
	addTeachers := func() error {
		teachers, err := nu.teachers.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, t := range *teachers {
			userIDs = append(userIDs, t.UserID)
		}
		return nil
	}
	addParents := func() error {
		parents, err := nu.parents.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range *parents {
			userIDs = append(userIDs, p.UserID)
		}
		return nil
	}

	switch group {
	case "students":
		if err := addStudents(); err != nil {
			return nil, err
		}
	case "teachers":
		if err := addTeachers(); err != nil {
			return nil, err
		}
	case "parents":
		if err := addParents(); err != nil {
			return nil, err
		}
	case "all":
		for _, add := range []func() error{addStudents, addTeachers, addParents} {
			if err := add(); err != nil {
				return nil, err
			}
		}
	default:
		return nil, domain.Validationf("unknown recipient group %q", group)
	}
	return userIDs, nil
}

func (nu *NotifyUsecase) activeEmails(ctx context.Context, userIDs []int) []string {
	var emails []string
	for _, id := range userIDs {
		u, err := nu.users.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if u.IsActive {
			emails = append(emails, u.Email)
		}
	}
	return emails
}
