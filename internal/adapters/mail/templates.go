package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/dhruvgupta3389/anvad/internal/models"
)

// rupees renders an amount without trailing zeros.
func rupees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var otpTmpl = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f5ef;">
  <div style="background-color: white; padding: 30px; border-radius: 10px; text-align: center;">
    <h1 style="color: #7d3600; margin-bottom: 20px;"><span style="color: #EDBC7E;">ANVAD</span></h1>
    <h2 style="color: #333; margin-bottom: 20px;">Email Verification</h2>
    <p style="color: #666; margin-bottom: 30px;">Please use the following OTP to verify your email address:</p>
    <div style="background-color: #7d3600; color: white; padding: 15px; border-radius: 5px; font-size: 24px; font-weight: bold; letter-spacing: 3px; margin: 20px 0;">{{.Code}}</div>
    <p style="color: #666; font-size: 14px; margin-top: 20px;">This OTP is valid for 10 minutes only.</p>
    <p style="color: #999; font-size: 12px; margin-top: 30px;">If you didn't request this verification, please ignore this email.</p>
  </div>
</div>`))

var orderTmpl = template.Must(template.New("order").Funcs(template.FuncMap{"rupees": rupees}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px; background-color: #f9f5ef;">
  <div style="background-color: white; padding: 30px; border-radius: 10px;">
    <div style="text-align: center; margin-bottom: 30px;">
      <h1 style="color: #7d3600; margin-bottom: 10px;"><span style="color: #EDBC7E;">ANVAD</span></h1>
      <div style="background-color: #4CAF50; color: white; padding: 10px; border-radius: 5px; display: inline-block;">Order Confirmed</div>
    </div>
    <h2 style="color: #333; margin-bottom: 20px;">Thank you for your order, {{.Customer.Name}}!</h2>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 20px;">
      <h3 style="color: #7d3600; margin-top: 0;">Order Details</h3>
      <p><strong>Order ID:</strong> #{{.Reference}}</p>
      <p><strong>Email:</strong> {{.Customer.Email}}</p>
      <p><strong>Phone:</strong> {{.Customer.Phone}}</p>
      <p><strong>Delivery Address:</strong><br>{{.Customer.Address}}</p>
    </div>
    <h3 style="color: #7d3600; margin-bottom: 15px;">Items Ordered</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <thead>
        <tr style="background-color: #7d3600; color: white;">
          <th style="padding: 12px; text-align: left;">Product</th>
          <th style="padding: 12px; text-align: center;">Size</th>
          <th style="padding: 12px; text-align: center;">Qty</th>
          <th style="padding: 12px; text-align: right;">Price</th>
          <th style="padding: 12px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}<tr style="border-bottom: 1px solid #eee;">
          <td style="padding: 10px; text-align: left;">{{.ProductName}}</td>
          <td style="padding: 10px; text-align: center;">{{.VariantLabel}}</td>
          <td style="padding: 10px; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 10px; text-align: right;">₹{{rupees .UnitPrice}}</td>
          <td style="padding: 10px; text-align: right; font-weight: bold;">₹{{rupees .LineTotal}}</td>
        </tr>{{end}}
      </tbody>
    </table>
    <div style="text-align: right; margin-bottom: 30px;">
      <div style="background-color: #7d3600; color: white; padding: 15px; border-radius: 5px; display: inline-block;">
        <h3 style="margin: 0;">Total Amount: ₹{{rupees .TotalPrice}}</h3>
      </div>
    </div>
  </div>
</div>`))

// renderOTP produces the OTP email body.
func renderOTP(code string) (string, error) {
	var buf bytes.Buffer
	if err := otpTmpl.Execute(&buf, struct{ Code string }{code}); err != nil {
		return "", fmt.Errorf("failed to render otp email: %w", err)
	}
	return buf.String(), nil
}

// renderOrderConfirmation produces the order confirmation body.
func renderOrderConfirmation(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderTmpl.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("failed to render order email: %w", err)
	}
	return buf.String(), nil
}
