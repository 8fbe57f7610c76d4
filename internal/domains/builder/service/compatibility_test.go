package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
)

// testProduct builds a catalog product with a parsed spec bag, the same way
// the repository hands products to the service layer.
func testProduct(cat product.Category, specs map[string]interface{}) *product.Product {
	p := &product.Product{
		ID:       uuid.New(),
		Name:     string(cat) + " under test",
		Category: cat,
		Price:    decimal.NewFromInt(100),
		Stock:    10,
		SpecsRaw: specs,
	}
	p.ParseSpecs()
	return p
}

func selectionOf(t *testing.T, products ...*product.Product) *model.Selection {
	t.Helper()
	sel := model.NewSelection()
	for _, p := range products {
		require.NoError(t, sel.Select(p))
	}
	return sel
}

func TestCheckCompatibility_EmptySelection(t *testing.T) {
	issues := CheckCompatibility(model.NewSelection())
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestCheckCompatibility_NilSelection(t *testing.T) {
	assert.Empty(t, CheckCompatibility(nil))
}

func TestCheckCompatibility_SocketMismatch(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "LGA1700"}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityError, issues[0].Severity)
	assert.Equal(t, "CPU socket (AM5) does not match motherboard socket (LGA1700)", issues[0].Message)
	assert.Equal(t, []product.Category{product.CategoryCPU, product.CategoryMotherboard}, issues[0].AffectedSlots)
}

func TestCheckCompatibility_SocketMatch(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "AM5"}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_UnknownSocketStaysSilent(t *testing.T) {
	// A missing spec means "cannot verify", not "incompatible"
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "LGA1700"}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_EmptyStringSocketStaysSilent(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"socket": ""}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "AM5"}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_RAMTypeMismatch(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryRAM, map[string]interface{}{"type": "DDR5"}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"ram_type": "DDR4"}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityError, issues[0].Severity)
	assert.Equal(t, "RAM type (DDR5) does not match motherboard support (DDR4)", issues[0].Message)
	assert.Equal(t, []product.Category{product.CategoryRAM, product.CategoryMotherboard}, issues[0].AffectedSlots)
}

func TestCheckCompatibility_RAMTypeMatch(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryRAM, map[string]interface{}{"type": "DDR5"}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"ram_type": "DDR5"}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_PSUInsufficient(t *testing.T) {
	// 65 + 220 = 285 TDP, recommended 427.5, cited as 428 after rounding up
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": 65}),
		testProduct(product.CategoryGPU, map[string]interface{}{"tdp": 220}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 400}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "PSU wattage (400W) may be insufficient. Recommended: 428W", issues[0].Message)
	assert.Equal(t, []product.Category{product.CategoryPSU}, issues[0].AffectedSlots)
}

func TestCheckCompatibility_PSUSufficient(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": 65}),
		testProduct(product.CategoryGPU, map[string]interface{}{"tdp": 220}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 450}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_PSUExactRecommendationDoesNotWarn(t *testing.T) {
	// 200 * 1.5 = 300 exactly; meeting the recommendation is enough
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": 200}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 300}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_PSUUnknownWattageSkipsRule(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": 300}),
		testProduct(product.CategoryPSU, map[string]interface{}{}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_PSUUnknownTDPCountsAsZero(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 100}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_PSUStringSpecs(t *testing.T) {
	// Spec bags frequently carry numbers as strings
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": "125"}),
		testProduct(product.CategoryGPU, map[string]interface{}{"tdp": "320"}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": "650"}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, "PSU wattage (650W) may be insufficient. Recommended: 668W", issues[0].Message)
}

func TestCheckCompatibility_GPUTooLong(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryGPU, map[string]interface{}{"length": 320}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 300}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityError, issues[0].Severity)
	assert.Equal(t, "GPU (320mm) exceeds case clearance (300mm)", issues[0].Message)
	assert.Equal(t, []product.Category{product.CategoryGPU, product.CategoryCase}, issues[0].AffectedSlots)
}

func TestCheckCompatibility_GPUFits(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryGPU, map[string]interface{}{"length": 320}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 330}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_GPUExactClearanceFits(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryGPU, map[string]interface{}{"length": 300}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 300}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_GPUZeroClearanceStaysSilent(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryGPU, map[string]interface{}{"length": 320}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 0}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_CoolerTooTall(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCooler, map[string]interface{}{"height": 165}),
		testProduct(product.CategoryCase, map[string]interface{}{"cpu_cooler_height": 160}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityError, issues[0].Severity)
	assert.Equal(t, "CPU cooler (165mm) exceeds case clearance (160mm)", issues[0].Message)
	assert.Equal(t, []product.Category{product.CategoryCooler, product.CategoryCase}, issues[0].AffectedSlots)
}

func TestCheckCompatibility_CoolerFits(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCooler, map[string]interface{}{"height": 155}),
		testProduct(product.CategoryCase, map[string]interface{}{"cpu_cooler_height": 160}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}

func TestCheckCompatibility_FractionalClearanceMessage(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryGPU, map[string]interface{}{"length": 320.5}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 320}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 1)
	assert.Equal(t, "GPU (320.5mm) exceeds case clearance (320mm)", issues[0].Message)
}

func TestCheckCompatibility_IssuesKeepRuleOrder(t *testing.T) {
	// The PSU rule runs before the clearance rules, so its warning comes out
	// ahead of the GPU error; severity never reorders findings
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"tdp": 150}),
		testProduct(product.CategoryGPU, map[string]interface{}{"tdp": 300, "length": 340}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 500}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 330}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 2)
	assert.Equal(t, model.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "PSU wattage")
	assert.Equal(t, model.SeverityError, issues[1].Severity)
	assert.Contains(t, issues[1].Message, "GPU (340mm)")
}

func TestCheckCompatibility_MultipleErrorsKeepRuleOrder(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "LGA1700", "ram_type": "DDR4"}),
		testProduct(product.CategoryRAM, map[string]interface{}{"type": "DDR5"}),
	)

	issues := CheckCompatibility(sel)
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "CPU socket")
	assert.Contains(t, issues[1].Message, "RAM type")
}

func TestCheckCompatibility_FullCompatibleBuild(t *testing.T) {
	sel := selectionOf(t,
		testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5", "tdp": 105}),
		testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "AM5", "ram_type": "DDR5"}),
		testProduct(product.CategoryGPU, map[string]interface{}{"tdp": 220, "length": 310}),
		testProduct(product.CategoryRAM, map[string]interface{}{"type": "DDR5"}),
		testProduct(product.CategoryStorage, map[string]interface{}{}),
		testProduct(product.CategoryPSU, map[string]interface{}{"wattage": 750}),
		testProduct(product.CategoryCase, map[string]interface{}{"gpu_clearance": 360, "cpu_cooler_height": 170}),
		testProduct(product.CategoryCooler, map[string]interface{}{"height": 160}),
	)

	assert.Empty(t, CheckCompatibility(sel))
}
