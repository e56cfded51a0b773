package student

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lingostep/placement/internal/controller"
	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/service"
	"github.com/rs/zerolog/log"
)

type PlacementController struct {
	userTestService service.UserTestService
	attemptService  service.AttemptService
	gradingService  service.GradingService
}

func NewPlacementController(
	userTestService service.UserTestService,
	attemptService service.AttemptService,
	gradingService service.GradingService,
) *PlacementController {
	return &PlacementController{
		userTestService: userTestService,
		attemptService:  attemptService,
		gradingService:  gradingService,
	}
}

func (c *PlacementController) RegisterRoutes(api *gin.RouterGroup) {
	tests := api.Group("/placement-tests")
	tests.GET("", c.GetAllTests)
	tests.GET("/:test_id", c.GetTestDetails)
	tests.POST("/:test_id/attempts", c.StartAttempt)
	tests.POST("/submissions", c.SubmitAnswers)

	attempts := api.Group("/attempts")
	attempts.GET("/:attempt_id", c.GetAttempt)
	attempts.GET("/:attempt_id/answers", c.GetAttemptAnswers)
	attempts.GET("/:attempt_id/score", c.GetAttemptScore)

	api.GET("/students/:student_id/attempts", c.GetStudentAttempts)
	api.GET("/students/:student_id/scores", c.GetStudentScores)
}

// GetAllTests godoc
// @Summary List placement tests
// @Description Lists available placement tests with their question counts.
// @Tags Placement Tests
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /placement-tests [get]
func (c *PlacementController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Placement tests retrieved", tests)
}

// GetTestDetails godoc
// @Summary Get one placement test
// @Description Returns the test with all its questions. Correct answers are never included.
// @Tags Placement Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Test not found"
// @Router /placement-tests/{test_id} [get]
func (c *PlacementController) GetTestDetails(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		controller.BadRequest(ctx, "Invalid test ID format")
		return
	}
	test, err := c.userTestService.GetTestDetails(uint(testID))
	if err != nil {
		log.Warn().Err(err).Uint64("testID", testID).Msg("GetTestDetails: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Placement test retrieved", test)
}

// StartAttempt godoc
// @Summary Start a placement test attempt
// @Description Opens a new attempt for a student and returns its access id, which identifies the attempt in every later call.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param attempt_data body dto.StartAttemptDTO true "Student starting the attempt"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Test or student not found"
// @Router /placement-tests/{test_id}/attempts [post]
func (c *PlacementController) StartAttempt(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		controller.BadRequest(ctx, "Invalid test ID format")
		return
	}
	var req dto.StartAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartAttempt: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}
	attempt, err := c.attemptService.StartAttempt(uint(testID), req)
	if err != nil {
		log.Error().Err(err).Uint64("testID", testID).Msg("StartAttempt: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.Created(ctx, "Attempt started", attempt)
}

// SubmitAnswers godoc
// @Summary Submit answers for grading
// @Description Grades a batch of answers for one attempt. Objective answers are scored immediately; writing answers are evaluated in the background and the response includes whatever evaluations finished in time.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAnswersDTO true "Answers to grade"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid submission"
// @Failure 404 {object} dto.APIResponse "Attempt or test not found"
// @Router /placement-tests/submissions [post]
func (c *PlacementController) SubmitAnswers(ctx *gin.Context) {
	var req dto.SubmitAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswers: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}
	summary, err := c.gradingService.SubmitAnswers(req)
	if err != nil {
		log.Error().Err(err).Str("attemptID", req.AttemptID).Msg("SubmitAnswers: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Submission graded", summary)
}

// GetAttempt godoc
// @Summary Get an attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt access ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *PlacementController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.attemptService.GetAttempt(ctx.Param("attempt_id"))
	if err != nil {
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Attempt retrieved", attempt)
}

// GetAttemptAnswers godoc
// @Summary Get graded answers for an attempt
// @Description Returns every persisted answer record, including writing feedback once background evaluation has finished.
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt access ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Attempt not found"
// @Router /attempts/{attempt_id}/answers [get]
func (c *PlacementController) GetAttemptAnswers(ctx *gin.Context) {
	answers, err := c.attemptService.GetAttemptAnswers(ctx.Param("attempt_id"))
	if err != nil {
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Attempt answers retrieved", answers)
}

// GetAttemptScore godoc
// @Summary Get the score summary for an attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt access ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Attempt or score not found"
// @Router /attempts/{attempt_id}/score [get]
func (c *PlacementController) GetAttemptScore(ctx *gin.Context) {
	score, err := c.attemptService.GetAttemptScore(ctx.Param("attempt_id"))
	if err != nil {
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Attempt score retrieved", score)
}

// GetStudentAttempts godoc
// @Summary List a student's attempts
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{student_id}/attempts [get]
func (c *PlacementController) GetStudentAttempts(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Param("student_id"), 10, 32)
	if err != nil {
		controller.BadRequest(ctx, "Invalid student ID format")
		return
	}
	attempts, err := c.attemptService.GetStudentAttempts(uint(studentID))
	if err != nil {
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Attempts retrieved", attempts)
}

// GetStudentScores godoc
// @Summary Get a student's placement history
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{student_id}/scores [get]
func (c *PlacementController) GetStudentScores(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Param("student_id"), 10, 32)
	if err != nil {
		controller.BadRequest(ctx, "Invalid student ID format")
		return
	}
	scores, err := c.attemptService.GetStudentScores(uint(studentID))
	if err != nil {
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Placement scores retrieved", scores)
}
