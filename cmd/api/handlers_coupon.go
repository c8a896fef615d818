package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/coupon"
)

// validateCouponHandler checks a code against a purchase total and returns
// the discounted amount. The discount never exceeds the total.
func validateCouponHandler(repo coupon.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req coupon.ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		total, err := decimal.NewFromString(req.Total)
		if err != nil || total.IsNegative() {
			badRequest(c, "total must be a non-negative decimal")
			return
		}

		cp, err := repo.GetByCode(c.Request.Context(), req.Code)
		if err != nil {
			fail(c, err)
			return
		}

		now := time.Now()
		if !cp.IsValid(now) {
			c.JSON(http.StatusOK, coupon.ValidateCouponResponse{
				Valid: false,
				Code:  cp.Code,
				Total: total.String(),
			})
			return
		}

		discount := cp.CalculateDiscount(total, now)
		if discount.GreaterThan(total) {
			discount = total
		}
		c.JSON(http.StatusOK, coupon.ValidateCouponResponse{
			Valid:    discount.IsPositive(),
			Code:     cp.Code,
			Discount: discount.String(),
			Total:    total.String(),
			Final:    total.Sub(discount).String(),
		})
	}
}

func listCouponsHandler(repo coupon.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context(), c.Query("active") == "1")
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func createCouponHandler(repo coupon.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req coupon.CreateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		cp, err := couponFromCreate(&req)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := repo.Create(c.Request.Context(), cp)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func couponFromCreate(req *coupon.CreateCouponRequest) (*coupon.Coupon, error) {
	value, err := decimal.NewFromString(req.DiscountValue)
	if err != nil || value.IsNegative() {
		return nil, errInvalidDecimal("discount_value")
	}
	minPurchase := decimal.Zero
	if req.MinPurchase != "" {
		if minPurchase, err = decimal.NewFromString(req.MinPurchase); err != nil || minPurchase.IsNegative() {
			return nil, errInvalidDecimal("min_purchase")
		}
	}
	cp := &coupon.Coupon{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: value,
		MinPurchase:   minPurchase,
		IsActive:      req.IsActive,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if req.MaxDiscount != "" {
		md, err := decimal.NewFromString(req.MaxDiscount)
		if err != nil || md.IsNegative() {
			return nil, errInvalidDecimal("max_discount")
		}
		cp.MaxDiscount = &md
	}
	return cp, nil
}

func errInvalidDecimal(field string) error {
	return fmt.Errorf("%s must be a non-negative decimal", field)
}

// updateCouponHandler fetches the current row and overlays the provided
// fields before writing, so omitted fields keep their stored values.
func updateCouponHandler(repo coupon.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req coupon.UpdateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		cp, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}

		if req.Code != "" {
			cp.Code = req.Code
		}
		if req.DiscountType != "" {
			cp.DiscountType = req.DiscountType
		}
		if req.DiscountValue != "" {
			v, err := decimal.NewFromString(req.DiscountValue)
			if err != nil || v.IsNegative() {
				badRequest(c, errInvalidDecimal("discount_value").Error())
				return
			}
			cp.DiscountValue = v
		}
		if req.MinPurchase != "" {
			v, err := decimal.NewFromString(req.MinPurchase)
			if err != nil || v.IsNegative() {
				badRequest(c, errInvalidDecimal("min_purchase").Error())
				return
			}
			cp.MinPurchase = v
		}
		if req.MaxDiscount != "" {
			v, err := decimal.NewFromString(req.MaxDiscount)
			if err != nil || v.IsNegative() {
				badRequest(c, errInvalidDecimal("max_discount").Error())
				return
			}
			cp.MaxDiscount = &v
		}
		if req.IsActive != nil {
			cp.IsActive = *req.IsActive
		}
		if req.StartDate != nil {
			cp.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			cp.EndDate = *req.EndDate
		}

		out, err := repo.Update(c.Request.Context(), cp)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteCouponHandler(repo coupon.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, coupon.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
