// Package errors provides structured errors for the dice engine: the two
// kinds the grammar and evaluator raise (FormatError, RollerError), built
// on a small general-purpose Error/Code type.
//
// # Basic Usage
//
//	err := errors.FormatError(expr, pos, "unknown token")
//	err := errors.InvalidArgumentf("ndice %d out of range", n)
//
// Adding metadata:
//
//	err := errors.OutOfRange("nsides out of range").WithMeta("nsides", n)
//
// Wrapping:
//
//	if err := roller.Roll(ctx, n, s); err != nil {
//	    return errors.Wrap(err, "roll failed")
//	}
//
// # Error Checking
//
//	if errors.IsFormatError(err) { ... }
//	code := errors.GetCode(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("ndice", n, 0, 1000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
