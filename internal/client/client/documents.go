package client

const userFields = `
	id
	email
	firstName
	lastName
	phone
	address
	createdAt
	updatedAt`

const productFields = `
	id
	title
	description
	categories {
		id
		name
	}
	purchasePrice
	rentalPrice
	rentUnit
	status
	userId
	createdAt
	updatedAt`

const meQuery = `query GetMe {
	me {` + userFields + `
	}
}`

const userQuery = `query GetUser($id: ID!) {
	user(id: $id) {` + userFields + `
	}
}`

const allProductsQuery = `query GetAllProducts($limit: Int, $offset: Int, $status: ProductStatus) {
	allProducts(limit: $limit, offset: $offset, status: $status) {
		success
		products {` + productFields + `
			isBought
			isCurrentlyRented
		}
		total
	}
}`

const userProductsQuery = `query GetUserProducts($userId: String!) {
	getUserProducts(userId: $userId) {
		success
		products {` + productFields + `
		}
		total
	}
}`

const productQuery = `query GetProduct($id: String!) {
	product(id: $id) {` + productFields + `
		isBought
		isCurrentlyRented
	}
}`

const categoriesQuery = `query GetCategories {
	categories {
		id
		name
		createdAt
	}
}`

const purchaseFields = `
	id
	product {
		id
		title
		description
		categories {
			id
			name
		}
		purchasePrice
		createdAt
	}
	price
	status
	createdAt`

const rentalFields = `
	id
	product {
		id
		title
		description
		categories {
			id
			name
		}
		rentalPrice
		rentUnit
		createdAt
	}
	startDate
	endDate
	rentalPrice
	status
	createdAt`

const myBuysQuery = `query GetMyBuys($status: BuyStatus) {
	myBuys(status: $status) {` + purchaseFields + `
	}
}`

const mySalesQuery = `query GetMySales {
	mySales {` + purchaseFields + `
	}
}`

const myRentalsQuery = `query GetMyRentals($status: RentStatus) {
	myRentals(status: $status) {` + rentalFields + `
	}
}`

const myLendingsQuery = `query GetMyLendings {
	myLendings {` + rentalFields + `
	}
}`

const loginMutation = `mutation Login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		user {` + userFields + `
		}
		token
	}
}`

const registerMutation = `mutation Register($data: RegisterInput!) {
	register(data: $data) {
		user {` + userFields + `
		}
		token
	}
}`

const updateProfileMutation = `mutation UpdateProfile($data: UpdateProfileInput!) {
	updateProfile(data: $data) {` + userFields + `
	}
}`

const createProductMutation = `mutation CreateProduct($input: CreateProductInput!) {
	createProduct(input: $input) {
		success
		message
		product {` + productFields + `
		}
	}
}`

const updateProductMutation = `mutation UpdateProduct($input: UpdateProductInput!) {
	updateProduct(input: $input) {
		success
		message
		product {` + productFields + `
		}
	}
}`

const deleteProductMutation = `mutation DeleteProduct($id: String!) {
	deleteProduct(id: $id) {
		success
		message
	}
}`

const buyProductMutation = `mutation BuyProduct($input: BuyProductInput!) {
	buyProduct(input: $input) {
		id
		productId
		product {
			id
			title
			description
			purchasePrice
		}
		buyerId
		sellerId
		price
		status
		createdAt
		updatedAt
	}
}`

const rentProductMutation = `mutation RentProduct($input: RentProductInput!) {
	rentProduct(input: $input) {
		id
		productId
		product {
			id
			title
			rentalPrice
			rentUnit
		}
		renterId
		ownerId
		startDate
		endDate
		rentalPrice
		status
		createdAt
	}
}`
