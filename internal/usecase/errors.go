package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// User-facing save/delete failure messages. Constraint errors get the
// specific text; everything else carries the underlying message.
const (
	msgInvalidOrderRefs  = "ข้อมูลลูกค้า ผู้ติดต่อ หรือที่อยู่ไม่ถูกต้อง กรุณาตรวจสอบข้อมูล"
	msgDuplicateOrderNo  = "เลขที่ออเดอร์ซ้ำ กรุณาใช้เลขที่อื่น"
	msgInvalidProduct    = "ข้อมูลสินค้าไม่ถูกต้อง กรุณาเลือกสินค้าใหม่"
	msgSaveOrderFailed   = "บันทึกออเดอร์ไม่สำเร็จ"
	msgSaveItemsFailed   = "บันทึกรายการสินค้าไม่สำเร็จ"
	msgSaveJobsFailed    = "บันทึกใบงานไม่สำเร็จ"
	msgSavePaymentFailed = "บันทึกข้อมูลการชำระเงินไม่สำเร็จ"
	msgDeleteBlocked     = "ไม่สามารถลบได้เนื่องจากมีข้อมูลที่เกี่ยวข้อง"
	msgDeleteFailed      = "ลบไม่สำเร็จ"
)
