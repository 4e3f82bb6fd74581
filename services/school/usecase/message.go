package usecase

import (
	"context"
	"time"

	"schoolmgmt/domain"
)

// MessageUsecase implements parent-teacher messaging. Threads are derived
// from the (parent, teacher) pair; eligibility is computed from current
// class and subject links, never stored.
type MessageUsecase struct {
	messages domain.MessageRepo
	students domain.StudentRepo
	teachers domain.TeacherRepo
	parents  domain.ParentRepo
	academic domain.AcademicRepo
}

func NewMessageUsecase(messages domain.MessageRepo, students domain.StudentRepo, teachers domain.TeacherRepo, parents domain.ParentRepo, academic domain.AcademicRepo) *MessageUsecase {
	return &MessageUsecase{messages: messages, students: students, teachers: teachers, parents: parents, academic: academic}
}

// eligibleTeachers are the teachers who teach a subject scheduled for one of
// the parent's children's classes.
func (mu *MessageUsecase) eligibleTeachers(ctx context.Context, parentID int) (*[]domain.Teacher, error) {
	children, err := mu.students.GetByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	classIDs := make([]int, 0, len(*children))
	seen := make(map[int]bool)
	for _, c := range *children {
		if c.ClassID != nil && !seen[*c.ClassID] {
			seen[*c.ClassID] = true
			classIDs = append(classIDs, *c.ClassID)
		}
	}

	subjects, err := mu.academic.GetSubjectsByClasses(ctx, classIDs)
	if err != nil {
		return nil, err
	}
	subjectIDs := make([]int, 0, len(*subjects))
	for _, s := range *subjects {
		subjectIDs = append(subjectIDs, s.SubjectID)
	}

	return mu.teachers.GetBySubjects(ctx, subjectIDs)
}

// eligibleParents are the parents of students in classes the teacher teaches.
func (mu *MessageUsecase) eligibleParents(ctx context.Context, teacherID int) (*[]domain.Parent, error) {
	classes, err := mu.teachers.GetClasses(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	classIDs := make([]int, 0, len(*classes))
	for _, c := range *classes {
		classIDs = append(classIDs, c.ClassID)
	}

	students, err := mu.students.GetByClasses(ctx, classIDs)
	if err != nil {
		return nil, err
	}
	parentIDs := make([]int, 0)
	seen := make(map[int]bool)
	for _, s := range *students {
		if s.ParentID != nil && !seen[*s.ParentID] {
			seen[*s.ParentID] = true
			parentIDs = append(parentIDs, *s.ParentID)
		}
	}

	return mu.parents.GetByIDs(ctx, parentIDs)
}

// ParentConversations lists the parent's eligible teachers as conversation
// summaries: last-message preview, unread count, most recent first with
// never-messaged teachers last.
func (mu *MessageUsecase) ParentConversations(ctx context.Context, parentID int) ([]domain.Conversation, error) {
	teachers, err := mu.eligibleTeachers(ctx, parentID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(*teachers))
	for _, t := range *teachers {
		conv := domain.Conversation{CounterpartID: t.TeacherID, Name: t.Name, Context: t.Qualification}
		last, err := mu.messages.GetLastInThread(ctx, parentID, t.TeacherID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			conv.LastMessage = domain.PreviewContent(last.Content)
			at := last.CreatedAt
			conv.LastMessageTime = &at
		}
		unread, err := mu.messages.CountUnread(ctx, t.TeacherID, domain.ParticipantTeacher, parentID, domain.ParticipantParent)
		if err != nil {
			return nil, err
		}
		conv.UnreadCount = unread
		out = append(out, conv)
	}

	domain.SortConversations(out)
	return out, nil
}

// TeacherConversations mirrors ParentConversations from the teacher's side.
func (mu *MessageUsecase) TeacherConversations(ctx context.Context, teacherID int) ([]domain.Conversation, error) {
	parents, err := mu.eligibleParents(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(*parents))
	for _, p := range *parents {
		conv := domain.Conversation{CounterpartID: p.ParentID, Name: p.Name, Context: p.Relation}
		last, err := mu.messages.GetLastInThread(ctx, p.ParentID, teacherID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			conv.LastMessage = domain.PreviewContent(last.Content)
			at := last.CreatedAt
			conv.LastMessageTime = &at
		}
		unread, err := mu.messages.CountUnread(ctx, p.ParentID, domain.ParticipantParent, teacherID, domain.ParticipantTeacher)
		if err != nil {
			return nil, err
		}
		conv.UnreadCount = unread
		out = append(out, conv)
	}

	domain.SortConversations(out)
	return out, nil
}

// OpenThreadAsParent returns the thread oldest-first and marks every message
// addressed to the parent read. Opening always clears the unread count.
func (mu *MessageUsecase) OpenThreadAsParent(ctx context.Context, parentID, teacherID int) (*[]domain.Message, error) {
	if _, err := mu.teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	if err := mu.messages.MarkThreadRead(ctx, teacherID, domain.ParticipantTeacher, parentID, domain.ParticipantParent, time.Now()); err != nil {
		return nil, err
	}
	return mu.messages.GetThread(ctx, parentID, teacherID)
}

func (mu *MessageUsecase) OpenThreadAsTeacher(ctx context.Context, teacherID, parentID int) (*[]domain.Message, error) {
	if _, err := mu.parents.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	if err := mu.messages.MarkThreadRead(ctx, parentID, domain.ParticipantParent, teacherID, domain.ParticipantTeacher, time.Now()); err != nil {
		return nil, err
	}
	return mu.messages.GetThread(ctx, parentID, teacherID)
}

// SendAsParent delivers a message to a teacher the parent is eligible to
// contact; anyone else is unauthorized.
func (mu *MessageUsecase) SendAsParent(ctx context.Context, parentID int, req *domain.SendMessageRequest) (*domain.Message, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if _, err := mu.teachers.GetByID(ctx, req.CounterpartID); err != nil {
		return nil, err
	}

	eligible, err := mu.eligibleTeachers(ctx, parentID)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, t := range *eligible {
		if t.TeacherID == req.CounterpartID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.Unauthorizedf("teacher %d does not teach any of your children", req.CounterpartID)
	}

	m := &domain.Message{
		SenderID:     parentID,
		SenderType:   domain.ParticipantParent,
		ReceiverID:   req.CounterpartID,
		ReceiverType: domain.ParticipantTeacher,
		Content:      req.Content,
		StudentID:    req.StudentID,
	}
	if err := mu.messages.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (mu *MessageUsecase) SendAsTeacher(ctx context.Context, teacherID int, req *domain.SendMessageRequest) (*domain.Message, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if _, err := mu.parents.GetByID(ctx, req.CounterpartID); err != nil {
		return nil, err
	}

	eligible, err := mu.eligibleParents(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, p := range *eligible {
		if p.ParentID == req.CounterpartID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.Unauthorizedf("parent %d has no student in your classes", req.CounterpartID)
	}

	m := &domain.Message{
		SenderID:     teacherID,
		SenderType:   domain.ParticipantTeacher,
		ReceiverID:   req.CounterpartID,
		ReceiverType: domain.ParticipantParent,
		Content:      req.Content,
		StudentID:    req.StudentID,
	}
	if err := mu.messages.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
