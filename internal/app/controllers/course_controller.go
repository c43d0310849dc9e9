package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Create handles course creation
// @Summary Create a new course
// @Description Creates a course with its delivery mode, optional venue and instructor assignments
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Validation failed or reference does not exist"
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid course data", err)
		return
	}

	course := req.ToModel()
	id, err := c.courseService.CreateCourse(ctx, course, req.InstructorIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, created)
}

// GetByID retrieves a course with its delivery mode, venue and instructors
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, course)
}

// List retrieves courses. With past=true only courses whose end date
// has passed are returned.
// @Summary List courses
// @Tags courses
// @Produce json
// @Param q query string false "Title filter"
// @Param past query bool false "Only courses whose end date has passed"
// @Success 200 {object} dto.APIResponse "Courses retrieved"
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	var (
		courses interface{}
		err     error
	)

	if ctx.Query("past") == "true" {
		courses, err = c.courseService.GetPastCourses(ctx, listParamsFromQuery(ctx))
	} else {
		courses, err = c.courseService.GetCourses(ctx, listParamsFromQuery(ctx))
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, courses)
}

// Update updates a course and replaces its instructor assignments
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed or reference does not exist"
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid course data", err)
		return
	}

	course := req.ToModel()
	course.ID = id
	if err := c.courseService.UpdateCourse(ctx, course, req.InstructorIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, updated)
}

// Delete deletes a course along with its registrations and instructor
// assignments
// @Summary Delete a course
// @Tags courses
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
