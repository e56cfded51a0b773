package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lingostep/placement/internal/controller"
	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

func (c *AdminTestController) RegisterRoutes(api *gin.RouterGroup) {
	tests := api.Group("/admin/placement-tests")
	tests.POST("", c.CreateTest)
	tests.PUT("/:test_id", c.UpdateTest)
}

// CreateTest godoc
// @Summary (Admin) Create a placement test
// @Description Creates a placement test with its multiple-choice questions, true/false groups and writing prompts in one request.
// @Tags Admin - Placement Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test with questions"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/placement-tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	test, err := c.adminTestService.CreateTest(req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Admin CreateTest: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.Created(ctx, "Placement test created", test)
}

// UpdateTest godoc
// @Summary (Admin) Update placement test metadata
// @Description Updates name, description and time limit. Questions are not editable once the test exists.
// @Tags Admin - Placement Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Metadata to update"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 404 {object} dto.APIResponse "Test not found"
// @Router /admin/placement-tests/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		controller.BadRequest(ctx, "Invalid test ID format")
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateTest: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	if err := c.adminTestService.UpdateTest(uint(testID), req); err != nil {
		log.Error().Err(err).Uint64("testID", testID).Msg("Admin UpdateTest: Service error")
		controller.Fail(ctx, err)
		return
	}
	controller.OK(ctx, "Placement test updated", nil)
}
