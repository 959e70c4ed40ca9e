package constants

// ユーザーロール
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// エラーメッセージ
const (
	ErrProductNotFound = "Product not found"
	ErrUnexpected      = "Unexpected error"
	ErrInvalidID       = "Invalid id"
	ErrInvalidInput    = "Invalid input"
	ErrRecordNotFound  = "record not found"
	ErrUserNotFound    = "User not found"
	ErrEmailExists     = "Email already exists"
	ErrNotAnImage      = "Attached file is not an image."
	ErrDeleteFailed    = "Deleting product failed."
)

const MsgDeleteSucceeded = "Success!"

// 画面のタイトルとパス
const (
	TitleAddProduct   = "Add Product"
	TitleEditProduct  = "Edit Product"
	TitleAdminProduct = "Admin Products"
	TitleShop         = "Shop"

	PathAddProduct   = "/admin/add-product"
	PathEditProduct  = "/admin/edit-product"
	PathAdminProduct = "/admin/products"
	PathShop         = "/"
)

const TokenCookieName = "token"
