package entity

// Permission is a named, atomic capability string. The full set of names
// the system checks is enumerated below so that a typo in a check fails to
// compile instead of silently disabling authorization.
type Permission string

// String returns the string representation of the Permission.
func (p Permission) String() string {
	return string(p)
}

// Client permissions.
const (
	PermViewClientAll     Permission = "can_view_client_all"
	PermViewClient        Permission = "can_view_client"
	PermCreateClient      Permission = "can_create_client"
	PermUpdateClient      Permission = "can_update_client"
	PermUpdateClientSelf  Permission = "can_update_client_self"
	PermDeleteClient      Permission = "can_delete_client"
	PermDeleteClientSelf  Permission = "can_delete_client_self"
	PermDeleteClientAll   Permission = "can_delete_client_all"
	PermResetPassword     Permission = "can_reset_password"
	PermResetPasswordSelf Permission = "can_reset_password_self"
)

// Role and permission administration.
const (
	PermViewRoleList       Permission = "can_view_role_list"
	PermViewRole           Permission = "can_view_role"
	PermCreateRole         Permission = "can_create_role"
	PermUpdateRole         Permission = "can_update_role"
	PermDeleteRole         Permission = "can_delete_role"
	PermViewPermissionList Permission = "can_view_permission_list"
	PermViewPermission     Permission = "can_view_permission"
	PermCreatePermission   Permission = "can_create_permission"
	PermUpdatePermission   Permission = "can_update_permission"
	PermDeletePermission   Permission = "can_delete_permission"
)

// Catalog permissions.
const (
	PermViewCategoryList Permission = "can_view_category_list"
	PermViewCategory     Permission = "can_view_category"
	PermCreateCategory   Permission = "can_create_category"
	PermUpdateCategory   Permission = "can_update_category"
	PermDeleteCategory   Permission = "can_delete_category"

	PermViewCurrencyList Permission = "can_view_currency_list"
	PermViewCurrency     Permission = "can_view_currency"
	PermCreateCurrency   Permission = "can_create_currency"
	PermUpdateCurrency   Permission = "can_update_currency"
	PermDeleteCurrency   Permission = "can_delete_currency"
)

// Product permissions, including the explicit validation workflow and the
// owned document/characteristic collections.
const (
	PermViewProductList Permission = "can_view_product_list"
	PermViewProduct     Permission = "can_view_product"
	PermCreateProduct   Permission = "can_create_product"
	PermUpdateProduct   Permission = "can_update_product"
	PermDeleteProduct   Permission = "can_delete_product"
	PermValidateProduct Permission = "can_validate_product"

	PermViewDocumentList Permission = "can_view_document_list"
	PermViewDocument     Permission = "can_view_document"
	PermCreateDocument   Permission = "can_create_document"
	PermUpdateDocument   Permission = "can_update_document"
	PermDeleteDocument   Permission = "can_delete_document"

	PermViewCharacteristicList Permission = "can_view_characteristic_list"
	PermViewCharacteristic     Permission = "can_view_characteristic"
	PermCreateCharacteristic   Permission = "can_create_characteristic"
	PermUpdateCharacteristic   Permission = "can_update_characteristic"
	PermDeleteCharacteristic   Permission = "can_delete_characteristic"
)

// Cart permissions.
const (
	PermViewCartList Permission = "can_view_cart_list"
	PermViewCart     Permission = "can_view_cart"
	PermCreateCart   Permission = "can_create_cart"
	PermUpdateCart   Permission = "can_update_cart"
	PermDeleteCart   Permission = "can_delete_cart"

	PermViewCartItemList Permission = "can_view_cartItem_list"
	PermViewCartItem     Permission = "can_view_cartItem"
	PermCreateCartItem   Permission = "can_create_cartItem"
	PermUpdateCartItem   Permission = "can_update_cartItem"
	PermDeleteCartItem   Permission = "can_delete_cartItem"
)

// Order permissions.
const (
	PermViewOrderList     Permission = "can_view_order_list"
	PermViewOrderListSelf Permission = "can_view_order_list_self"
	PermViewOrder         Permission = "can_view_order"
	PermViewOrderSelf     Permission = "can_view_order_self"
	PermCreateOrder       Permission = "can_create_order"
	PermUpdateOrder       Permission = "can_update_order"
	PermDeleteOrder       Permission = "can_delete_order"
)

// Support permissions. Creation is open to anonymous callers and carries
// no permission of its own.
const (
	PermViewSupportList     Permission = "can_view_support_list"
	PermViewSupport         Permission = "can_view_support"
	PermUpdateSupport       Permission = "can_update_support"
	PermUpdateSupportStatus Permission = "can_update_support_status"
	PermDeleteSupport       Permission = "can_delete_support"
)

// Global variable permissions.
const (
	PermViewGlobalVarList Permission = "can_view_global_vars_list"
	PermViewGlobalVar     Permission = "can_view_global_vars"
	PermCreateGlobalVar   Permission = "can_create_global_vars"
	PermUpdateGlobalVar   Permission = "can_update_global_vars"
	PermDeleteGlobalVar   Permission = "can_delete_global_vars"
)
