package service

import (
	"fmt"
	"math"
	"strconv"

	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
)

// psuHeadroom is the multiplier applied to the combined CPU+GPU TDP to get
// the recommended PSU wattage.
const psuHeadroom = 1.5

// CheckCompatibility evaluates the full rule set against a selection and
// returns every finding in rule order, so a wattage warning can sit between
// two clearance errors. A rule only fires when every spec value it needs is
// known; an unknown spec is treated as "cannot verify", never as a
// violation. The result is always non-nil.
func CheckCompatibility(sel *model.Selection) []model.Issue {
	issues := []model.Issue{}
	if sel == nil {
		return issues
	}

	cpu := sel.Product(product.CategoryCPU)
	mb := sel.Product(product.CategoryMotherboard)
	gpu := sel.Product(product.CategoryGPU)
	ram := sel.Product(product.CategoryRAM)
	psu := sel.Product(product.CategoryPSU)
	pcCase := sel.Product(product.CategoryCase)
	cooler := sel.Product(product.CategoryCooler)

	// Rule 1: CPU socket must match motherboard socket
	if cpu != nil && mb != nil && cpu.Specs.Socket != nil && mb.Specs.Socket != nil {
		if *cpu.Specs.Socket != *mb.Specs.Socket {
			issues = append(issues, model.Issue{
				Severity: model.SeverityError,
				Message: fmt.Sprintf("CPU socket (%s) does not match motherboard socket (%s)",
					*cpu.Specs.Socket, *mb.Specs.Socket),
				AffectedSlots: []product.Category{product.CategoryCPU, product.CategoryMotherboard},
			})
		}
	}

	// Rule 2: RAM module type must match what the motherboard supports
	if ram != nil && mb != nil && ram.Specs.MemoryType != nil && mb.Specs.RAMType != nil {
		if *ram.Specs.MemoryType != *mb.Specs.RAMType {
			issues = append(issues, model.Issue{
				Severity: model.SeverityError,
				Message: fmt.Sprintf("RAM type (%s) does not match motherboard support (%s)",
					*ram.Specs.MemoryType, *mb.Specs.RAMType),
				AffectedSlots: []product.Category{product.CategoryRAM, product.CategoryMotherboard},
			})
		}
	}

	// Rule 3: PSU wattage against combined CPU+GPU TDP with headroom.
	// An unknown TDP counts as zero draw; an unknown PSU wattage skips the
	// rule entirely. Exact equality with the recommendation does not warn.
	if psu != nil && psu.Specs.Wattage != nil && (cpu != nil || gpu != nil) {
		totalTDP := 0.0
		if cpu != nil && cpu.Specs.TDP != nil {
			totalTDP += *cpu.Specs.TDP
		}
		if gpu != nil && gpu.Specs.TDP != nil {
			totalTDP += *gpu.Specs.TDP
		}
		recommended := totalTDP * psuHeadroom
		if *psu.Specs.Wattage < recommended {
			issues = append(issues, model.Issue{
				Severity: model.SeverityWarning,
				Message: fmt.Sprintf("PSU wattage (%sW) may be insufficient. Recommended: %dW",
					formatSpecNumber(*psu.Specs.Wattage), int(math.Ceil(recommended))),
				AffectedSlots: []product.Category{product.CategoryPSU},
			})
		}
	}

	// Rule 4: GPU length against case clearance. Zero or negative values mean
	// the dimension is not meaningfully known, so the rule stays silent.
	if gpu != nil && pcCase != nil && gpu.Specs.Length != nil && pcCase.Specs.GPUClearance != nil {
		length, clearance := *gpu.Specs.Length, *pcCase.Specs.GPUClearance
		if length > 0 && clearance > 0 && length > clearance {
			issues = append(issues, model.Issue{
				Severity: model.SeverityError,
				Message: fmt.Sprintf("GPU (%smm) exceeds case clearance (%smm)",
					formatSpecNumber(length), formatSpecNumber(clearance)),
				AffectedSlots: []product.Category{product.CategoryGPU, product.CategoryCase},
			})
		}
	}

	// Rule 5: cooler height against case clearance, same shape as rule 4
	if cooler != nil && pcCase != nil && cooler.Specs.Height != nil && pcCase.Specs.CPUCoolerHeight != nil {
		height, clearance := *cooler.Specs.Height, *pcCase.Specs.CPUCoolerHeight
		if height > 0 && clearance > 0 && height > clearance {
			issues = append(issues, model.Issue{
				Severity: model.SeverityError,
				Message: fmt.Sprintf("CPU cooler (%smm) exceeds case clearance (%smm)",
					formatSpecNumber(height), formatSpecNumber(clearance)),
				AffectedSlots: []product.Category{product.CategoryCooler, product.CategoryCase},
			})
		}
	}

	return issues
}

// formatSpecNumber renders a spec value the way it was entered: no trailing
// zeros, no exponent. 650 stays "650", 240.5 stays "240.5".
func formatSpecNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
