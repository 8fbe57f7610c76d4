package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/course/model"
	"pcstore-backend/internal/domains/course/service"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type CourseHandler struct {
	service service.ServiceInterface
}

func NewCourseHandler(service service.ServiceInterface) *CourseHandler {
	return &CourseHandler{service: service}
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// GetCourse handles GET /courses/by-slug/:slug
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.service.GetCourseBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Enroll handles POST /courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, enrollment)
}

// GetProgress handles GET /courses/:id/progress
func (h *CourseHandler) GetProgress(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	progress, err := h.service.GetProgress(c.Request.Context(), userID, courseID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, progress)
}

// ListMyEnrollments handles GET /courses/enrollments
func (h *CourseHandler) ListMyEnrollments(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	enrollments, err := h.service.ListMyEnrollments(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, enrollments)
}

// CompleteLesson handles POST /courses/lessons/:id/complete
func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	progress, err := h.service.CompleteLesson(c.Request.Context(), userID, lessonID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, progress)
}

// GetQuiz handles GET /courses/lessons/:id/quiz
func (h *CourseHandler) GetQuiz(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	quiz, err := h.service.GetQuiz(c.Request.Context(), lessonID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, quiz)
}

// SubmitQuizAnswer handles POST /courses/lessons/:id/quiz
func (h *CourseHandler) SubmitQuizAnswer(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	var req model.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.SubmitQuizAnswer(c.Request.Context(), lessonID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListAllCourses handles GET /admin/courses
func (h *CourseHandler) ListAllCourses(c *gin.Context) {
	courses, err := h.service.ListAllCourses(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// CreateCourse handles POST /admin/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// UpdateCourse handles PUT /admin/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	var req model.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// DeleteCourse handles DELETE /admin/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateLesson handles POST /admin/courses/:id/lessons
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	var req model.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lesson, err := h.service.CreateLesson(c.Request.Context(), courseID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lesson)
}

// UpdateLesson handles PUT /admin/courses/lessons/:id
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	var req model.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lesson, err := h.service.UpdateLesson(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /admin/courses/lessons/:id
func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	if err := h.service.DeleteLesson(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateQuiz handles POST /admin/courses/lessons/:id/quiz
func (h *CourseHandler) CreateQuiz(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lesson id")
		return
	}

	var req model.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	quiz, err := h.service.CreateQuiz(c.Request.Context(), lessonID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, quiz)
}

// DeleteQuiz handles DELETE /admin/courses/quizzes/:id
func (h *CourseHandler) DeleteQuiz(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid quiz id")
		return
	}

	if err := h.service.DeleteQuiz(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *CourseHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrCourseNotFound):
		response.NotFound(c, "course not found")
	case errors.Is(err, model.ErrLessonNotFound):
		response.NotFound(c, "lesson not found")
	case errors.Is(err, model.ErrQuizNotFound):
		response.NotFound(c, "quiz not found")
	case errors.Is(err, model.ErrNotEnrolled):
		response.NotFound(c, "not enrolled in course")
	case errors.Is(err, model.ErrAlreadyEnrolled):
		response.Conflict(c, "already enrolled")
	case errors.Is(err, model.ErrInvalidLevel):
		response.BadRequest(c, "invalid course level")
	case errors.Is(err, model.ErrInvalidAnswerIndex):
		response.BadRequest(c, "answer index out of range")
	case errors.Is(err, model.ErrSlugAlreadyExists):
		response.Conflict(c, "slug already exists")
	default:
		logger.Error("course operation failed", err)
		response.InternalServerError(c, "course operation failed")
	}
}
